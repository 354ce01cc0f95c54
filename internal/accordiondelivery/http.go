// Package accordiondelivery exposes the presentation state of the dashboard
// and of the management page over HTTP.
package accordiondelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/fund-manager/internal/accordion"
	"github.com/go-petr/fund-manager/internal/domain"
	"github.com/go-petr/fund-manager/pkg/errorspkg"
	"github.com/go-petr/fund-manager/pkg/web"
)

// Service provides the bank lookups needed by accordion delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accordiondelivery
type Service interface {
	GetBank(ctx context.Context, id string) (domain.Bank, error)
	ListBanks(ctx context.Context) ([]domain.Bank, error)
}

// Accordion is the single-expansion state of the dashboard.
type Accordion interface {
	Toggle(id string)
	Expanded() (string, bool)
	Rows(ids []string) []accordion.Row
}

// PanelSet is the independent open state of the management page sections.
type PanelSet interface {
	Toggle(name string) (bool, error)
	States() []accordion.PanelState
}

// Handler facilitates accordion delivery layer logic.
type Handler struct {
	service   Service
	accordion Accordion
	panels    PanelSet
}

// NewHandler returns accordion handler.
func NewHandler(s Service, a Accordion, p PanelSet) *Handler {
	return &Handler{
		service:   s,
		accordion: a,
		panels:    p,
	}
}

type stateData struct {
	ExpandedID string          `json:"expanded_id,omitempty"`
	Rows       []accordion.Row `json:"rows"`
}

// Get handles http request to read the accordion rows of the current banks.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	banks, err := h.service.ListBanks(ctx)
	if err != nil {
		internalError(gctx, err)
		return
	}

	web.JSON(gctx, http.StatusOK, web.Response{Data: h.state(banks)})
}

func (h *Handler) state(banks []domain.Bank) stateData {
	ids := make([]string, len(banks))
	for i, b := range banks {
		ids[i] = b.ID
	}

	expanded, _ := h.accordion.Expanded()

	return stateData{
		ExpandedID: expanded,
		Rows:       h.accordion.Rows(ids),
	}
}

type toggleRequest struct {
	ID string `uri:"id" binding:"required"`
}

// Toggle handles http request to expand or collapse a bank section.
func (h *Handler) Toggle(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req toggleRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		web.JSON(gctx, http.StatusBadRequest, web.Error(err))
		return
	}

	if _, err := h.service.GetBank(ctx, req.ID); err != nil {
		if errors.Is(err, domain.ErrBankNotFound) {
			web.JSON(gctx, http.StatusNotFound, web.Error(err))
			return
		}

		internalError(gctx, err)

		return
	}

	h.accordion.Toggle(req.ID)

	banks, err := h.service.ListBanks(ctx)
	if err != nil {
		internalError(gctx, err)
		return
	}

	web.JSON(gctx, http.StatusOK, web.Response{Data: h.state(banks)})
}

type panelsData struct {
	Panels []accordion.PanelState `json:"panels"`
}

// Panels handles http request to read the management page panels.
func (h *Handler) Panels(gctx *gin.Context) {
	web.JSON(gctx, http.StatusOK, web.Response{Data: panelsData{h.panels.States()}})
}

type panelRequest struct {
	Name string `uri:"name" binding:"required"`
}

// TogglePanel handles http request to open or close a management page panel.
func (h *Handler) TogglePanel(gctx *gin.Context) {
	var req panelRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		web.JSON(gctx, http.StatusBadRequest, web.Error(err))
		return
	}

	open, err := h.panels.Toggle(req.Name)
	if err != nil {
		if errors.Is(err, accordion.ErrUnknownPanel) {
			web.JSON(gctx, http.StatusNotFound, web.Error(err))
			return
		}

		internalError(gctx, err)

		return
	}

	web.JSON(gctx, http.StatusOK, web.Response{Data: accordion.PanelState{Name: req.Name, Open: open}})
}

func internalError(gctx *gin.Context, err error) {
	zerolog.Ctx(gctx.Request.Context()).Error().Err(err).Send()
	web.JSON(gctx, http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
}
