// Package accountdelivery manages delivery layer of accounts and their journal entries.
package accountdelivery

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/ledger/internal/domain"
	"github.com/go-petr/ledger/pkg/web"
)

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	CreateAccount(ctx context.Context, cpr string) (domain.Account, error)
	ListAccounts(ctx context.Context, cpr string) ([]domain.Account, error)
	Deposit(ctx context.Context, cpr, number, text string, amount float64) (domain.JournalEntry, error)
	Withdraw(ctx context.Context, cpr, number, text string, amount float64) (domain.JournalEntry, error)
	Balance(ctx context.Context, cpr, number string) (float64, error)
	History(ctx context.Context, cpr, number string) ([]domain.JournalEntry, error)
	ScanLargeTransactions(ctx context.Context, since time.Time) ([]domain.CustomerEntries, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(s Service) Handler {
	return Handler{service: s}
}

type customerURI struct {
	CPR string `uri:"cpr" binding:"required"`
}

type accountURI struct {
	CPR    string `uri:"cpr" binding:"required"`
	Number string `uri:"number" binding:"required"`
}

// bindURI binds path parameters into uri and writes the error response when it fails.
func bindURI(gctx *gin.Context, uri any) bool {
	if err := gctx.ShouldBindUri(uri); err != nil {
		zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return false
	}

	return true
}

type accountData struct {
	Account domain.Account `json:"account"`
}

// Create handles http request to open an account for the customer.
func (h *Handler) Create(gctx *gin.Context) {
	var uri customerURI
	if !bindURI(gctx, &uri) {
		return
	}

	account, err := h.service.CreateAccount(gctx.Request.Context(), uri.CPR)
	if err != nil {
		gctx.JSON(web.ErrorResponse(err))
		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Data: accountData{account}})
}

type accountsData struct {
	Accounts []domain.Account `json:"accounts"`
}

// List handles http request to list the customer accounts.
func (h *Handler) List(gctx *gin.Context) {
	var uri customerURI
	if !bindURI(gctx, &uri) {
		return
	}

	accounts, err := h.service.ListAccounts(gctx.Request.Context(), uri.CPR)
	if err != nil {
		gctx.JSON(web.ErrorResponse(err))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: accountsData{accounts}})
}

type postRequest struct {
	Text   string   `json:"text" binding:"required"`
	Amount *float64 `json:"amount" binding:"required"`
}

type entryData struct {
	Entry domain.JournalEntry `json:"entry"`
}

type postFunc func(ctx context.Context, cpr, number, text string, amount float64) (domain.JournalEntry, error)

func post(gctx *gin.Context, fn postFunc) {
	ctx := gctx.Request.Context()

	var uri accountURI
	if !bindURI(gctx, &uri) {
		return
	}

	var req postRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	entry, err := fn(ctx, uri.CPR, uri.Number, req.Text, *req.Amount)
	if err != nil {
		gctx.JSON(web.ErrorResponse(err))
		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Data: entryData{entry}})
}

// Deposit handles http request to credit the account.
func (h *Handler) Deposit(gctx *gin.Context) {
	post(gctx, h.service.Deposit)
}

// Withdraw handles http request to debit the account.
func (h *Handler) Withdraw(gctx *gin.Context) {
	post(gctx, h.service.Withdraw)
}

type balanceData struct {
	Balance float64 `json:"balance"`
}

// Balance handles http request to get the account balance.
func (h *Handler) Balance(gctx *gin.Context) {
	var uri accountURI
	if !bindURI(gctx, &uri) {
		return
	}

	balance, err := h.service.Balance(gctx.Request.Context(), uri.CPR, uri.Number)
	if err != nil {
		gctx.JSON(web.ErrorResponse(err))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: balanceData{balance}})
}

type entriesData struct {
	Entries []domain.JournalEntry `json:"entries"`
}

// History handles http request to list the account entries in posting order.
func (h *Handler) History(gctx *gin.Context) {
	var uri accountURI
	if !bindURI(gctx, &uri) {
		return
	}

	entries, err := h.service.History(gctx.Request.Context(), uri.CPR, uri.Number)
	if err != nil {
		gctx.JSON(web.ErrorResponse(err))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: entriesData{entries}})
}

type reportRequest struct {
	Since string `form:"since"`
}

type reportData struct {
	Customers []domain.CustomerEntries `json:"customers"`
}

// LargeTransactions handles http request to list deposits above the reporting
// threshold grouped by customer. Without since every entry is scanned.
func (h *Handler) LargeTransactions(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req reportRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	var since time.Time
	if req.Since != "" {
		var err error
		if since, err = time.Parse(time.RFC3339, req.Since); err != nil {
			l.Info().Err(err).Send()
			gctx.JSON(http.StatusBadRequest, web.Response{Error: "Since must be an RFC3339 timestamp"})

			return
		}
	}

	customers, err := h.service.ScanLargeTransactions(ctx, since)
	if err != nil {
		gctx.JSON(web.ErrorResponse(err))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: reportData{customers}})
}
