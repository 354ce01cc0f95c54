// Package bankdelivery manages delivery layer of banks.
package bankdelivery

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
	"github.com/go-petr/fund-manager/pkg/accounttypepkg"
	"github.com/go-petr/fund-manager/pkg/errorspkg"
	"github.com/go-petr/fund-manager/pkg/validatorpkg"
	"github.com/go-petr/fund-manager/pkg/web"
)

// Service provides service layer interface needed by bank delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package bankdelivery
type Service interface {
	SubmitBank(ctx context.Context, arg domain.CreateBankParams) (domain.Bank, error)
	DeleteBank(ctx context.Context, id string, c notice.Confirmer) (int, error)
	GetBank(ctx context.Context, id string) (domain.Bank, error)
	ListBanks(ctx context.Context) ([]domain.Bank, error)
	BankName(ctx context.Context, id string) string
	TotalBalance(ctx context.Context) (decimal.Decimal, error)
	Overview(ctx context.Context) (domain.Overview, error)
}

// Handler facilitates bank delivery layer logic.
type Handler struct {
	service  Service
	notifier notice.Notifier
}

// NewHandler returns bank handler.
func NewHandler(bs Service, n notice.Notifier) *Handler {
	return &Handler{
		service:  bs,
		notifier: n,
	}
}

type data struct {
	Bank domain.Bank `json:"bank"`
}

type createRequest struct {
	Name        string          `json:"name" binding:"required,min=2"`
	Balance     decimal.Decimal `json:"balance" binding:"dgte=0"`
	AccountType string          `json:"account_type" binding:"required,accounttype"`
	Icon        string          `json:"icon" binding:"required,max=5"`
}

// Create handles http request to create bank.
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

	bank, err := h.service.SubmitBank(ctx, domain.CreateBankParams{
		Name:        req.Name,
		Balance:     req.Balance,
		AccountType: domain.AccountType(req.AccountType),
		Icon:        req.Icon,
	})
	if err != nil {
		writeError(gctx, err, nil)
		return
	}

	web.JSON(gctx, http.StatusOK, web.Response{Data: data{bank}})
}

type uriRequest struct {
	ID string `uri:"id" binding:"required"`
}

// Get handles http request to get bank.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Send()
		web.JSON(gctx, http.StatusBadRequest, web.Error(err))

		return
	}

	bank, err := h.service.GetBank(ctx, req.ID)
	if err != nil {
		writeError(gctx, err, nil)
		return
	}

	web.JSON(gctx, http.StatusOK, web.Response{Data: data{bank}})
}

type nameData struct {
	Name string `json:"name"`
}

// Name handles http request to resolve a bank name, falling back to a
// placeholder for unknown banks.
func (h *Handler) Name(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	name := h.service.BankName(ctx, gctx.Param("id"))

	web.JSON(gctx, http.StatusOK, web.Response{Data: nameData{name}})
}

type dataBanks struct {
	Banks []domain.Bank `json:"banks"`
}

// List handles http request to list banks.
func (h *Handler) List(gctx *gin.Context) {
	banks, err := h.service.ListBanks(gctx.Request.Context())
	if err != nil {
		writeError(gctx, err, nil)
		return
	}

	web.JSON(gctx, http.StatusOK, web.Response{Data: dataBanks{banks}})
}

type deleteRequest struct {
	Confirm bool `form:"confirm"`
}

type deleteData struct {
	ObjectivesRemoved int `json:"objectives_removed"`
}

// Delete handles http request to delete a bank with its objectives.
//
// Without confirm=true the deletion is declined and the confirmation prompt
// is returned with status 428.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var (
		uri   uriRequest
		query deleteRequest
	)

	if err := gctx.ShouldBindUri(&uri); err != nil {
		web.JSON(gctx, http.StatusBadRequest, web.Error(err))
		return
	}

	if err := gctx.ShouldBindQuery(&query); err != nil {
		web.JSON(gctx, http.StatusBadRequest, web.Error(err))
		return
	}

	var prompt notice.Prompt

	confirmer := notice.ConfirmFunc(func(_ context.Context, p notice.Prompt) bool {
		prompt = p
		return query.Confirm
	})

	removed, err := h.service.DeleteBank(ctx, uri.ID, confirmer)
	if err != nil {
		writeError(gctx, err, &prompt)
		return
	}

	web.JSON(gctx, http.StatusOK, web.Response{Data: deleteData{removed}})
}

type balanceData struct {
	TotalBalance decimal.Decimal `json:"total_balance"`
}

// TotalBalance handles http request to sum the balances of all banks.
func (h *Handler) TotalBalance(gctx *gin.Context) {
	total, err := h.service.TotalBalance(gctx.Request.Context())
	if err != nil {
		writeError(gctx, err, nil)
		return
	}

	web.JSON(gctx, http.StatusOK, web.Response{Data: balanceData{total}})
}

// Overview handles http request to get the dashboard.
func (h *Handler) Overview(gctx *gin.Context) {
	o, err := h.service.Overview(gctx.Request.Context())
	if err != nil {
		writeError(gctx, err, nil)
		return
	}

	web.JSON(gctx, http.StatusOK, web.Response{Data: o})
}

type accountTypesData struct {
	AccountTypes []domain.AccountType `json:"account_types"`
}

// AccountTypes handles http request to list the supported account types.
func (h *Handler) AccountTypes(gctx *gin.Context) {
	web.JSON(gctx, http.StatusOK, web.Response{
		Data: accountTypesData{accounttypepkg.SupportedAccountTypes},
	})
}

func writeError(gctx *gin.Context, err error, prompt *notice.Prompt) {
	var ve *domain.ValidationError

	switch {
	case errors.As(err, &ve):
		web.JSON(gctx, http.StatusBadRequest, web.Response{Error: err.Error(), Violations: ve.Violations})
	case errors.Is(err, domain.ErrBankNotFound):
		web.JSON(gctx, http.StatusNotFound, web.Error(err))
	case errors.Is(err, domain.ErrNotConfirmed):
		web.JSON(gctx, http.StatusPreconditionRequired, web.Response{Error: err.Error(), Prompt: prompt})
	default:
		zerolog.Ctx(gctx.Request.Context()).Error().Err(err).Send()
		web.JSON(gctx, http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}
