package objectivedelivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/go-petr/fund-manager/internal/domain"
	"github.com/go-petr/fund-manager/internal/middleware"
	"github.com/go-petr/fund-manager/internal/notice"
	"github.com/go-petr/fund-manager/pkg/errorspkg"
	"github.com/go-petr/fund-manager/pkg/iconpkg"
	"github.com/go-petr/fund-manager/pkg/randompkg"
	"github.com/go-petr/fund-manager/pkg/validatorpkg"
	"github.com/go-petr/fund-manager/pkg/web"
)

var equateDecimal = cmp.Comparer(func(x, y decimal.Decimal) bool { return x.Equal(y) })

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validatorpkg.Register(v); err != nil {
			fmt.Fprintf(os.Stderr, "validatorpkg.Register() returned error: %v\n", err)
			os.Exit(1)
		}
	}

	os.Exit(m.Run())
}

func randomObjective(bankID string) domain.Objective {
	arg := randompkg.CreateObjectiveParams(bankID)
	icon, _ := iconpkg.Find(arg.IconType)

	return domain.Objective{
		ID:            randompkg.String(12),
		Name:          arg.Name,
		CurrentAmount: arg.CurrentAmount,
		TargetAmount:  arg.TargetAmount,
		BankID:        bankID,
		Icon:          icon.Name,
		IconClass:     icon.IconClass,
		ProgressClass: icon.ProgressClass,
	}
}

func newServer(t *testing.T, s Service) *gin.Engine {
	t.Helper()

	h := NewHandler(s, notice.ContextNotifier{})

	server := gin.New()
	server.Use(middleware.Notices())
	server.GET("/objectives", h.List)
	server.POST("/objectives", h.Create)
	server.DELETE("/objectives/:id", h.Delete)
	server.GET("/icons", h.Icons)

	return server
}

type itemData = struct {
	Objective Item `json:"objective"`
}

func TestCreate(t *testing.T) {
	bankName := randompkg.Name()
	objective := randomObjective("bank-1")

	type requestBody struct {
		Name          string          `json:"name"`
		CurrentAmount decimal.Decimal `json:"current_amount"`
		TargetAmount  decimal.Decimal `json:"target_amount"`
		BankID        string          `json:"bank_id"`
		IconType      string          `json:"icon_type"`
	}

	valid := requestBody{
		Name:          objective.Name,
		CurrentAmount: objective.CurrentAmount,
		TargetAmount:  objective.TargetAmount,
		BankID:        objective.BankID,
		IconType:      objective.Icon,
	}

	testCases := []struct {
		name           string
		requestBody    func() requestBody
		buildStubs     func(s *MockService)
		wantStatusCode int
		wantError      string
		wantFields     []string
		wantNotice     []notice.Notification
	}{
		{
			name:        "OK",
			requestBody: func() requestBody { return valid },
			buildStubs: func(s *MockService) {
				s.EXPECT().
					SubmitObjective(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(ctx context.Context, arg domain.CreateObjectiveParams) (domain.Objective, error) {
						if arg.BankID != objective.BankID || arg.IconType != objective.Icon {
							return domain.Objective{}, errorspkg.ErrInternal
						}

						notice.ContextNotifier{}.Notify(ctx, notice.ObjectiveAdded)

						return objective, nil
					})
				s.EXPECT().BankName(gomock.Any(), gomock.Eq(objective.BankID)).Times(1).Return(bankName)
			},
			wantStatusCode: http.StatusOK,
			wantNotice:     []notice.Notification{notice.ObjectiveAdded},
		},
		{
			name: "TargetBelowOne",
			requestBody: func() requestBody {
				r := valid
				r.CurrentAmount = decimal.Zero
				r.TargetAmount = decimal.NewFromFloat(0.5)
				return r
			},
			buildStubs: func(s *MockService) {
				s.EXPECT().SubmitObjective(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "validation failed: TargetAmount must be greater than or equal to 1",
			wantNotice:     []notice.Notification{notice.FormInvalid},
		},
		{
			name: "UnknownIcon",
			requestBody: func() requestBody {
				r := valid
				r.IconType = "rocket"
				return r
			},
			buildStubs: func(s *MockService) {
				s.EXPECT().SubmitObjective(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "validation failed: IconType is not supported",
			wantNotice:     []notice.Notification{notice.FormInvalid},
		},
		{
			name: "MissingBank",
			requestBody: func() requestBody {
				r := valid
				r.BankID = ""
				return r
			},
			buildStubs: func(s *MockService) {
				s.EXPECT().SubmitObjective(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "validation failed: BankID field is required",
			wantNotice:     []notice.Notification{notice.FormInvalid},
		},
		{
			name: "TargetJustBelowOne",
			requestBody: func() requestBody {
				r := valid
				r.CurrentAmount = decimal.Zero
				r.TargetAmount = decimal.RequireFromString("0.99999999999999999999")
				return r
			},
			buildStubs: func(s *MockService) {
				s.EXPECT().SubmitObjective(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "validation failed: TargetAmount must be greater than or equal to 1",
			wantFields:     []string{"TargetAmount"},
			wantNotice:     []notice.Notification{notice.FormInvalid},
		},
		{
			name: "EveryInvalidField",
			requestBody: func() requestBody {
				return requestBody{
					Name:          "x",
					CurrentAmount: decimal.RequireFromString("-1e-400"),
					TargetAmount:  decimal.NewFromInt(100),
					BankID:        "",
					IconType:      "rocket",
				}
			},
			buildStubs: func(s *MockService) {
				s.EXPECT().SubmitObjective(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError: "validation failed: Name must be at least 2 characters long; " +
				"CurrentAmount must be greater than or equal to 0; " +
				"BankID field is required; IconType is not supported",
			wantFields: []string{"Name", "CurrentAmount", "BankID", "IconType"},
			wantNotice: []notice.Notification{notice.FormInvalid},
		},
		{
			name: "AmountExceedsTarget",
			requestBody: func() requestBody {
				r := valid
				r.CurrentAmount = r.TargetAmount.Add(decimal.NewFromInt(1))
				return r
			},
			buildStubs: func(s *MockService) {
				s.EXPECT().
					SubmitObjective(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(ctx context.Context, _ domain.CreateObjectiveParams) (domain.Objective, error) {
						notice.ContextNotifier{}.Notify(ctx, notice.AmountExceedsTarget)

						return domain.Objective{}, domain.NewValidationError(domain.FieldViolation{
							Field:   "CurrentAmount",
							Rule:    "ltefield",
							Message: domain.ErrAmountExceedsTarget.Error(),
						}).WithCause(domain.ErrAmountExceedsTarget)
					})
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrAmountExceedsTarget.Error(),
			wantNotice:     []notice.Notification{notice.AmountExceedsTarget},
		},
		{
			name:        "InternalServerError",
			requestBody: func() requestBody { return valid },
			buildStubs: func(s *MockService) {
				s.EXPECT().
					SubmitObjective(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Objective{}, domain.ErrDuplicateID)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			s := NewMockService(ctrl)
			tc.buildStubs(s)

			server := newServer(t, s)

			body, err := json.Marshal(tc.requestBody())
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, "/objectives", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{Data: &itemData{}, Violations: &[]domain.FieldViolation{}}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if res.Error != tc.wantError {
				t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
			}

			if diff := cmp.Diff(tc.wantNotice, res.Notifications); diff != "" {
				t.Errorf("res.Notifications mismatch (-want +got):\n%s", diff)
			}

			if tc.wantFields != nil {
				violations := *res.Violations.(*[]domain.FieldViolation)

				fields := make([]string, len(violations))
				for i, v := range violations {
					fields[i] = v.Field
				}

				if diff := cmp.Diff(tc.wantFields, fields); diff != "" {
					t.Errorf("res.Violations fields mismatch (-want +got):\n%s", diff)
				}
			}

			if tc.wantStatusCode == http.StatusOK {
				got := res.Data.(*itemData)

				want := Item{
					Objective: objective,
					Progress:  objective.Progress(),
					BankName:  bankName,
				}

				if diff := cmp.Diff(want, got.Objective, equateDecimal); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestCreateInvalidBodyNotifies(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	s := NewMockService(ctrl)
	s.EXPECT().SubmitObjective(gomock.Any(), gomock.Any()).Times(0)

	var forwarded notice.Collector

	h := NewHandler(s, notice.ContextNotifier{Next: &forwarded})

	server := gin.New()
	server.Use(middleware.Notices())
	server.POST("/objectives", h.Create)

	req, err := http.NewRequest(http.MethodPost, "/objectives", strings.NewReader(`{"name":"x","icon_type":"rocket"}`))
	if err != nil {
		t.Fatalf("Creating request error: %v", err)
	}

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	if got := recorder.Code; got != http.StatusBadRequest {
		t.Errorf("Status code: got %v, want %v", got, http.StatusBadRequest)
	}

	want := []notice.Notification{notice.FormInvalid}
	if diff := cmp.Diff(want, forwarded.Items()); diff != "" {
		t.Errorf("forwarded notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestList(t *testing.T) {
	objectives := []domain.Objective{randomObjective("a"), randomObjective("a")}

	testCases := []struct {
		name           string
		query          string
		buildStubs     func(s *MockService)
		wantStatusCode int
		wantLen        int
	}{
		{
			name:  "All",
			query: "",
			buildStubs: func(s *MockService) {
				s.EXPECT().ListObjectives(gomock.Any(), gomock.Eq("")).Times(1).Return(objectives, nil)
				s.EXPECT().BankName(gomock.Any(), gomock.Eq("a")).Times(2).Return("A bank")
			},
			wantStatusCode: http.StatusOK,
			wantLen:        2,
		},
		{
			name:  "ByBank",
			query: "?bank_id=a",
			buildStubs: func(s *MockService) {
				s.EXPECT().ListObjectives(gomock.Any(), gomock.Eq("a")).Times(1).Return(objectives[:1], nil)
				s.EXPECT().BankName(gomock.Any(), gomock.Eq("a")).Times(1).Return("A bank")
			},
			wantStatusCode: http.StatusOK,
			wantLen:        1,
		},
		{
			name:  "UnknownBank",
			query: "?bank_id=missing",
			buildStubs: func(s *MockService) {
				s.EXPECT().ListObjectives(gomock.Any(), gomock.Eq("missing")).Times(1).
					Return(nil, domain.ErrBankNotFound)
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:  "InternalServerError",
			query: "",
			buildStubs: func(s *MockService) {
				s.EXPECT().ListObjectives(gomock.Any(), gomock.Any()).Times(1).
					Return(nil, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			s := NewMockService(ctrl)
			tc.buildStubs(s)

			server := newServer(t, s)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/objectives"+tc.query, nil))

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{Data: &struct {
				Objectives []Item `json:"objectives"`
			}{}}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				return
			}

			got := res.Data.(*struct {
				Objectives []Item `json:"objectives"`
			})

			if len(got.Objectives) != tc.wantLen {
				t.Fatalf("len(Objectives)=%d, want %d", len(got.Objectives), tc.wantLen)
			}

			for _, it := range got.Objectives {
				if it.BankName != "A bank" {
					t.Errorf("BankName=%q, want %q", it.BankName, "A bank")
				}

				if it.Progress != it.Objective.Progress() {
					t.Errorf("Progress=%d, want %d", it.Progress, it.Objective.Progress())
				}
			}
		})
	}
}

func TestDelete(t *testing.T) {
	stub := func(err error) func(context.Context, string, notice.Confirmer) error {
		return func(ctx context.Context, _ string, c notice.Confirmer) error {
			if !c.Confirm(ctx, notice.DeleteObjectivePrompt) {
				return domain.ErrNotConfirmed
			}

			if err != nil {
				return err
			}

			notice.ContextNotifier{}.Notify(ctx, notice.ObjectiveDeleted)

			return nil
		}
	}

	testCases := []struct {
		name           string
		query          string
		err            error
		wantStatusCode int
		wantPrompt     *notice.Prompt
		wantNotice     []notice.Notification
	}{
		{
			name:           "Confirmed",
			query:          "?confirm=true",
			wantStatusCode: http.StatusOK,
			wantNotice:     []notice.Notification{notice.ObjectiveDeleted},
		},
		{
			name:           "NotConfirmed",
			query:          "?confirm=false",
			wantStatusCode: http.StatusPreconditionRequired,
			wantPrompt:     &notice.DeleteObjectivePrompt,
		},
		{
			name:           "NotFound",
			query:          "?confirm=true",
			err:            domain.ErrObjectiveNotFound,
			wantStatusCode: http.StatusNotFound,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			s := NewMockService(ctrl)
			s.EXPECT().DeleteObjective(gomock.Any(), gomock.Eq("o1"), gomock.Any()).
				Times(1).DoAndReturn(stub(tc.err))

			server := newServer(t, s)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/objectives/o1"+tc.query, nil))

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			var res web.Response
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if diff := cmp.Diff(tc.wantPrompt, res.Prompt); diff != "" {
				t.Errorf("res.Prompt mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(tc.wantNotice, res.Notifications); diff != "" {
				t.Errorf("res.Notifications mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIcons(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := newServer(t, NewMockService(ctrl))

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/icons", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("Status code: got %v, want %v", recorder.Code, http.StatusOK)
	}

	res := web.Response{Data: &struct {
		Icons []domain.IconBundle `json:"icons"`
	}{}}

	if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
		t.Fatalf("Decoding response body error: %v", err)
	}

	got := res.Data.(*struct {
		Icons []domain.IconBundle `json:"icons"`
	})

	if diff := cmp.Diff(iconpkg.Palette, got.Icons); diff != "" {
		t.Errorf("icons mismatch (-want +got):\n%s", diff)
	}
}
