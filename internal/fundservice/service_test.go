package fundservice

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/fund-manager/internal/accordion"
	"github.com/go-petr/fund-manager/internal/domain"
	"github.com/go-petr/fund-manager/internal/ledgerrepo"
	"github.com/go-petr/fund-manager/internal/ledgerservice"
	"github.com/go-petr/fund-manager/internal/notice"
	"github.com/go-petr/fund-manager/pkg/errorspkg"
	"github.com/go-petr/fund-manager/pkg/idpkg"
	"github.com/go-petr/fund-manager/pkg/randompkg"
)

var equateDecimal = cmp.Comparer(func(x, y decimal.Decimal) bool { return x.Equal(y) })

func newLedger(t *testing.T) *ledgerservice.Service {
	t.Helper()

	ls, err := ledgerservice.New(ledgerrepo.NewRepoMem(), idpkg.NewSequence("t"))
	require.NoError(t, err)

	return ls
}

func TestSubmitBank(t *testing.T) {
	t.Parallel()

	arg := randompkg.CreateBankParams()
	bank := domain.Bank{
		ID:          "b1",
		Name:        arg.Name,
		Balance:     arg.Balance,
		AccountType: arg.AccountType,
		Icon:        arg.Icon,
	}

	testCases := []struct {
		name       string
		buildStubs func(l *MockLedger)
		wantErr    error
		wantNotice []notice.Notification
	}{
		{
			name: "OK",
			buildStubs: func(l *MockLedger) {
				l.EXPECT().AddBank(gomock.Any(), gomock.Eq(arg)).Times(1).Return(bank, nil)
			},
			wantNotice: []notice.Notification{notice.BankAdded},
		},
		{
			name: "ValidationFailed",
			buildStubs: func(l *MockLedger) {
				l.EXPECT().AddBank(gomock.Any(), gomock.Eq(arg)).Times(1).
					Return(domain.Bank{}, domain.NewValidationError(domain.FieldViolation{Field: "Name", Rule: "min"}))
			},
			wantErr:    domain.ErrValidationFailed,
			wantNotice: []notice.Notification{notice.FormInvalid},
		},
		{
			name: "InternalError",
			buildStubs: func(l *MockLedger) {
				l.EXPECT().AddBank(gomock.Any(), gomock.Eq(arg)).Times(1).
					Return(domain.Bank{}, errorspkg.ErrInternal)
			},
			wantErr: errorspkg.ErrInternal,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			ledger := NewMockLedger(ctrl)
			tc.buildStubs(ledger)

			var rec notice.Collector
			s := New(ledger, &rec, &accordion.Controller{})

			got, err := s.SubmitBank(context.Background(), arg)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Equal(t, domain.Bank{}, got)
			} else {
				require.NoError(t, err)
				if diff := cmp.Diff(bank, got, equateDecimal); diff != "" {
					t.Errorf("SubmitBank() mismatch (-want +got):\n%s", diff)
				}
			}

			require.Equal(t, tc.wantNotice, rec.Items())
		})
	}
}

func TestSubmitObjective(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	testCases := []struct {
		name       string
		arg        func(bankID string) domain.CreateObjectiveParams
		wantErr    error
		wantNotice notice.Notification
	}{
		{
			name: "OK",
			arg: func(bankID string) domain.CreateObjectiveParams {
				return randompkg.CreateObjectiveParams(bankID)
			},
			wantNotice: notice.ObjectiveAdded,
		},
		{
			name: "CurrentEqualsTarget",
			arg: func(bankID string) domain.CreateObjectiveParams {
				arg := randompkg.CreateObjectiveParams(bankID)
				arg.CurrentAmount = arg.TargetAmount
				return arg
			},
			wantNotice: notice.ObjectiveAdded,
		},
		{
			name: "AmountExceedsTarget",
			arg: func(bankID string) domain.CreateObjectiveParams {
				arg := randompkg.CreateObjectiveParams(bankID)
				arg.CurrentAmount = arg.TargetAmount.Add(decimal.NewFromInt(1))
				return arg
			},
			wantErr:    domain.ErrAmountExceedsTarget,
			wantNotice: notice.AmountExceedsTarget,
		},
		{
			name: "MissingFieldsWinOverAmountRule",
			arg: func(bankID string) domain.CreateObjectiveParams {
				arg := randompkg.CreateObjectiveParams(bankID)
				arg.Name = ""
				arg.CurrentAmount = arg.TargetAmount.Add(decimal.NewFromInt(1))
				return arg
			},
			wantErr:    domain.ErrValidationFailed,
			wantNotice: notice.FormInvalid,
		},
		{
			name: "UnknownBank",
			arg: func(string) domain.CreateObjectiveParams {
				return randompkg.CreateObjectiveParams("missing")
			},
			wantErr:    domain.ErrBankNotFound,
			wantNotice: notice.FormInvalid,
		},
		{
			name: "UnknownIcon",
			arg: func(bankID string) domain.CreateObjectiveParams {
				arg := randompkg.CreateObjectiveParams(bankID)
				arg.IconType = "rocket"
				return arg
			},
			wantErr:    domain.ErrValidationFailed,
			wantNotice: notice.FormInvalid,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ledger := newLedger(t)

			bank, err := ledger.AddBank(ctx, randompkg.CreateBankParams())
			require.NoError(t, err)

			var rec notice.Collector
			s := New(ledger, &rec, &accordion.Controller{})

			_, err = s.SubmitObjective(ctx, tc.arg(bank.ID))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				objectives, err := ledger.ListObjectives(ctx, "")
				require.NoError(t, err)
				require.Empty(t, objectives)
			} else {
				require.NoError(t, err)
			}

			require.Equal(t, []notice.Notification{tc.wantNotice}, rec.Items())
		})
	}
}

func TestDeleteBank(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	testCases := []struct {
		name        string
		confirm     bool
		wantErr     error
		wantBanks   int
		wantNotice  []notice.Notification
		wantExpand  bool
		wantRemoved int
	}{
		{
			name:        "Confirmed",
			confirm:     true,
			wantBanks:   1,
			wantNotice:  []notice.Notification{notice.BankDeleted},
			wantRemoved: 2,
		},
		{
			name:       "Declined",
			confirm:    false,
			wantErr:    domain.ErrNotConfirmed,
			wantBanks:  2,
			wantExpand: true,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ledger := newLedger(t)

			a, err := ledger.AddBank(ctx, randompkg.CreateBankParams())
			require.NoError(t, err)
			b, err := ledger.AddBank(ctx, randompkg.CreateBankParams())
			require.NoError(t, err)

			for j := 0; j < 2; j++ {
				_, err = ledger.AddObjective(ctx, randompkg.CreateObjectiveParams(a.ID))
				require.NoError(t, err)
			}

			_, err = ledger.AddObjective(ctx, randompkg.CreateObjectiveParams(b.ID))
			require.NoError(t, err)

			var (
				rec notice.Collector
				acc accordion.Controller
			)

			acc.Toggle(a.ID)

			var prompted notice.Prompt
			confirmer := notice.ConfirmFunc(func(_ context.Context, p notice.Prompt) bool {
				prompted = p
				return tc.confirm
			})

			s := New(ledger, &rec, &acc)

			removed, err := s.DeleteBank(ctx, a.ID, confirmer)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}

			require.Equal(t, notice.DeleteBankPrompt, prompted)
			require.Equal(t, tc.wantRemoved, removed)
			require.Equal(t, tc.wantNotice, rec.Items())
			require.Equal(t, tc.wantExpand, acc.IsExpanded(a.ID))

			banks, err := ledger.ListBanks(ctx)
			require.NoError(t, err)
			require.Len(t, banks, tc.wantBanks)

			rest, err := ledger.ListObjectives(ctx, b.ID)
			require.NoError(t, err)
			require.Len(t, rest, 1)
		})
	}
}

func TestDeleteBankErrors(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	ledger := NewMockLedger(ctrl)
	expansion := NewMockExpansion(ctrl)

	ledger.EXPECT().DeleteBank(gomock.Any(), gomock.Eq("missing")).Times(1).Return(0, domain.ErrBankNotFound)
	expansion.EXPECT().Forget(gomock.Any()).Times(0)

	var rec notice.Collector
	s := New(ledger, &rec, expansion)

	_, err := s.DeleteBank(context.Background(), "missing", notice.Always(true))
	require.ErrorIs(t, err, domain.ErrBankNotFound)
	require.Empty(t, rec.Items())
}

func TestDeleteObjective(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		confirm    bool
		buildStubs func(l *MockLedger)
		wantErr    error
		wantNotice []notice.Notification
	}{
		{
			name:    "Confirmed",
			confirm: true,
			buildStubs: func(l *MockLedger) {
				l.EXPECT().DeleteObjective(gomock.Any(), gomock.Eq("o1")).Times(1).Return(nil)
			},
			wantNotice: []notice.Notification{notice.ObjectiveDeleted},
		},
		{
			name:    "Declined",
			confirm: false,
			buildStubs: func(l *MockLedger) {
				l.EXPECT().DeleteObjective(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: domain.ErrNotConfirmed,
		},
		{
			name:    "NotFound",
			confirm: true,
			buildStubs: func(l *MockLedger) {
				l.EXPECT().DeleteObjective(gomock.Any(), gomock.Eq("o1")).Times(1).Return(domain.ErrObjectiveNotFound)
			},
			wantErr: domain.ErrObjectiveNotFound,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			ledger := NewMockLedger(ctrl)
			tc.buildStubs(ledger)

			var rec notice.Collector
			s := New(ledger, &rec, &accordion.Controller{})

			err := s.DeleteObjective(context.Background(), "o1", notice.Always(tc.confirm))
			if tc.wantErr != nil {
				require.True(t, errors.Is(err, tc.wantErr), "got %v, want %v", err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}

			require.Equal(t, tc.wantNotice, rec.Items())
		})
	}
}

func TestOverviewMarksExpandedBank(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ledger := newLedger(t)

	a, err := ledger.AddBank(ctx, randompkg.CreateBankParams())
	require.NoError(t, err)
	b, err := ledger.AddBank(ctx, randompkg.CreateBankParams())
	require.NoError(t, err)

	var acc accordion.Controller
	s := New(ledger, notice.LogNotifier{}, &acc)

	acc.Toggle(b.ID)

	got, err := s.Overview(ctx)
	require.NoError(t, err)
	require.Len(t, got.Banks, 2)
	require.Equal(t, a.ID, got.Banks[0].Bank.ID)
	require.False(t, got.Banks[0].Expanded)
	require.True(t, got.Banks[1].Expanded)
	require.True(t, got.TotalBalance.Equal(a.Balance.Add(b.Balance)))

	acc.Toggle(b.ID)

	got, err = s.Overview(ctx)
	require.NoError(t, err)

	for _, bo := range got.Banks {
		require.False(t, bo.Expanded)
	}
}

func TestQueriesForwardToLedger(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ledger := newLedger(t)
	s := New(ledger, notice.LogNotifier{}, &accordion.Controller{})

	bank, err := ledger.AddBank(ctx, randompkg.CreateBankParams())
	require.NoError(t, err)

	got, err := s.GetBank(ctx, bank.ID)
	require.NoError(t, err)
	require.Equal(t, bank.ID, got.ID)

	require.Equal(t, bank.Name, s.BankName(ctx, bank.ID))
	require.Equal(t, domain.UnknownBankName, s.BankName(ctx, "missing"))

	total, err := s.TotalBalance(ctx)
	require.NoError(t, err)
	require.True(t, total.Equal(bank.Balance))

	banks, err := s.ListBanks(ctx)
	require.NoError(t, err)
	require.Len(t, banks, 1)

	objectives, err := s.ListObjectives(ctx, bank.ID)
	require.NoError(t, err)
	require.Empty(t, objectives)
}
