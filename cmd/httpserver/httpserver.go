// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/ledger/internal/accountdelivery"
	"github.com/go-petr/ledger/internal/bankservice"
	"github.com/go-petr/ledger/internal/customerdelivery"
	"github.com/go-petr/ledger/internal/middleware"
	"github.com/go-petr/ledger/pkg/configpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	bank := bankservice.NewPGS(conn)

	customerHandler := customerdelivery.NewHandler(bank)
	accountHandler := accountdelivery.NewHandler(bank)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/customers", customerHandler.Create)
	engine.GET("/customers/:cpr", customerHandler.Get)
	engine.PATCH("/customers/:cpr", customerHandler.Rename)

	accounts := engine.Group("/customers/:cpr/accounts")
	accounts.POST("", accountHandler.Create)
	accounts.GET("", accountHandler.List)
	accounts.POST("/:number/deposits", accountHandler.Deposit)
	accounts.POST("/:number/withdrawals", accountHandler.Withdraw)
	accounts.GET("/:number/balance", accountHandler.Balance)
	accounts.GET("/:number/entries", accountHandler.History)

	engine.GET("/reports/large-transactions", accountHandler.LargeTransactions)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("cpr", customerdelivery.ValidCPR)
		if err != nil {
			return nil, errors.New("cannot register cpr validator")
		}
	}

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
