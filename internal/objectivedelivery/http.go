// Package objectivedelivery manages delivery layer of objectives.
package objectivedelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/fund-manager/internal/domain"
	"github.com/go-petr/fund-manager/internal/notice"
	"github.com/go-petr/fund-manager/pkg/errorspkg"
	"github.com/go-petr/fund-manager/pkg/iconpkg"
	"github.com/go-petr/fund-manager/pkg/validatorpkg"
	"github.com/go-petr/fund-manager/pkg/web"
)

// Service provides service layer interface needed by objective delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package objectivedelivery
type Service interface {
	SubmitObjective(ctx context.Context, arg domain.CreateObjectiveParams) (domain.Objective, error)
	DeleteObjective(ctx context.Context, id string, c notice.Confirmer) error
	ListObjectives(ctx context.Context, bankID string) ([]domain.Objective, error)
	BankName(ctx context.Context, id string) string
}

// Handler facilitates objective delivery layer logic.
type Handler struct {
	service  Service
	notifier notice.Notifier
}

// NewHandler returns objective handler.
func NewHandler(s Service, n notice.Notifier) *Handler {
	return &Handler{
		service:  s,
		notifier: n,
	}
}

// Item is an objective as listed: with its progress and the name of its bank.
type Item struct {
	Objective domain.Objective `json:"objective"`
	Progress  int64            `json:"progress"`
	BankName  string           `json:"bank_name"`
}

type data struct {
	Objective Item `json:"objective"`
}

type createRequest struct {
	Name          string          `json:"name" binding:"required,min=2"`
	CurrentAmount decimal.Decimal `json:"current_amount" binding:"dgte=0"`
	TargetAmount  decimal.Decimal `json:"target_amount" binding:"dgte=1"`
	BankID        string          `json:"bank_id" binding:"required"`
	IconType      string          `json:"icon_type" binding:"required,icon"`
}

// Create handles http request to create objective.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		res := web.Response{Error: "invalid request body"}

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			verr := domain.NewValidationError(validatorpkg.Violations(ve)...)
			res = web.Response{Error: verr.Error(), Violations: verr.Violations}
		}

		l.Info().Err(err).Send()
		h.notifier.Notify(ctx, notice.FormInvalid)
		web.JSON(gctx, http.StatusBadRequest, res)

		return
	}

	objective, err := h.service.SubmitObjective(ctx, domain.CreateObjectiveParams{
		Name:          req.Name,
		CurrentAmount: req.CurrentAmount,
		TargetAmount:  req.TargetAmount,
		BankID:        req.BankID,
		IconType:      req.IconType,
	})
	if err != nil {
		writeError(gctx, err, nil)
		return
	}

	web.JSON(gctx, http.StatusOK, web.Response{Data: data{h.item(ctx, objective)}})
}

func (h *Handler) item(ctx context.Context, o domain.Objective) Item {
	return Item{
		Objective: o,
		Progress:  o.Progress(),
		BankName:  h.service.BankName(ctx, o.BankID),
	}
}

type listRequest struct {
	BankID string `form:"bank_id"`
}

type dataObjectives struct {
	Objectives []Item `json:"objectives"`
}

// List handles http request to list objectives, optionally of one bank.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		web.JSON(gctx, http.StatusBadRequest, web.Error(err))
		return
	}

	objectives, err := h.service.ListObjectives(ctx, req.BankID)
	if err != nil {
		writeError(gctx, err, nil)
		return
	}

	items := make([]Item, len(objectives))
	for i, o := range objectives {
		items[i] = h.item(ctx, o)
	}

	web.JSON(gctx, http.StatusOK, web.Response{Data: dataObjectives{items}})
}

type uriRequest struct {
	ID string `uri:"id" binding:"required"`
}

type deleteRequest struct {
	Confirm bool `form:"confirm"`
}

// Delete handles http request to delete an objective.
//
// Without confirm=true the deletion is declined and the confirmation prompt
// is returned with status 428.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var (
		uri uriRequest
		req deleteRequest
	)

	if err := gctx.ShouldBindUri(&uri); err != nil {
		web.JSON(gctx, http.StatusBadRequest, web.Error(err))
		return
	}

	if err := gctx.ShouldBindQuery(&req); err != nil {
		web.JSON(gctx, http.StatusBadRequest, web.Error(err))
		return
	}

	var prompt notice.Prompt

	confirmer := notice.ConfirmFunc(func(_ context.Context, p notice.Prompt) bool {
		prompt = p
		return req.Confirm
	})

	if err := h.service.DeleteObjective(ctx, uri.ID, confirmer); err != nil {
		writeError(gctx, err, &prompt)
		return
	}

	web.JSON(gctx, http.StatusOK, web.Response{})
}

type iconsData struct {
	Icons []domain.IconBundle `json:"icons"`
}

// Icons handles http request to list the icon palette.
func (h *Handler) Icons(gctx *gin.Context) {
	web.JSON(gctx, http.StatusOK, web.Response{Data: iconsData{iconpkg.Palette}})
}

func writeError(gctx *gin.Context, err error, prompt *notice.Prompt) {
	var ve *domain.ValidationError

	switch {
	case errors.As(err, &ve):
		web.JSON(gctx, http.StatusBadRequest, web.Response{Error: err.Error(), Violations: ve.Violations})
	case errors.Is(err, domain.ErrObjectiveNotFound), errors.Is(err, domain.ErrBankNotFound):
		web.JSON(gctx, http.StatusNotFound, web.Error(err))
	case errors.Is(err, domain.ErrNotConfirmed):
		web.JSON(gctx, http.StatusPreconditionRequired, web.Response{Error: err.Error(), Prompt: prompt})
	default:
		zerolog.Ctx(gctx.Request.Context()).Error().Err(err).Send()
		web.JSON(gctx, http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}
