// Package customerdelivery manages delivery layer of customers.
package customerdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/ledger/internal/domain"
	"github.com/go-petr/ledger/pkg/web"
)

// Service provides service layer interface needed by customer delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package customerdelivery
type Service interface {
	CreateCustomer(ctx context.Context, name, cpr string) (domain.Customer, error)
	FindCustomer(ctx context.Context, cpr string) (domain.Customer, error)
	RenameCustomer(ctx context.Context, cpr, newName string) (domain.Customer, error)
}

// Handler facilitates customer delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns customer handler.
func NewHandler(s Service) Handler {
	return Handler{service: s}
}

type data struct {
	Customer domain.Customer `json:"customer"`
}

type createRequest struct {
	Name string `json:"name" binding:"required"`
	CPR  string `json:"cpr" binding:"required,cpr"`
}

// Create handles http request to register a customer.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	customer, err := h.service.CreateCustomer(ctx, req.Name, req.CPR)
	if err != nil {
		gctx.JSON(web.ErrorResponse(err))
		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Data: data{customer}})
}

type uriRequest struct {
	CPR string `uri:"cpr" binding:"required"`
}

// Get handles http request to find a customer by cpr.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	customer, err := h.service.FindCustomer(ctx, uri.CPR)
	if err != nil {
		gctx.JSON(web.ErrorResponse(err))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{customer}})
}

type renameRequest struct {
	Name string `json:"name" binding:"required"`
}

// Rename handles http request to change the customer name.
func (h *Handler) Rename(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	var req renameRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	customer, err := h.service.RenameCustomer(ctx, uri.CPR, req.Name)
	if err != nil {
		gctx.JSON(web.ErrorResponse(err))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{customer}})
}
