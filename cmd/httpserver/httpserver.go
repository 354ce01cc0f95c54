// Package httpserver manages server creation and api routing.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/go-petr/fund-manager/internal/accordion"
	"github.com/go-petr/fund-manager/internal/accordiondelivery"
	"github.com/go-petr/fund-manager/internal/bankdelivery"
	"github.com/go-petr/fund-manager/internal/demo"
	"github.com/go-petr/fund-manager/internal/fundservice"
	"github.com/go-petr/fund-manager/internal/ledgerrepo"
	"github.com/go-petr/fund-manager/internal/ledgerservice"
	"github.com/go-petr/fund-manager/internal/middleware"
	"github.com/go-petr/fund-manager/internal/notice"
	"github.com/go-petr/fund-manager/internal/objectivedelivery"
	"github.com/go-petr/fund-manager/pkg/configpkg"
	"github.com/go-petr/fund-manager/pkg/errorspkg"
	"github.com/go-petr/fund-manager/pkg/idpkg"
	"github.com/go-petr/fund-manager/pkg/validatorpkg"
	"github.com/go-petr/fund-manager/pkg/web"
)

// Server holds the ledger, handlers router and configuration.
type Server struct {
	Ledger *ledgerservice.Service
	Engine *gin.Engine
	Config configpkg.Config
}

// Timeouts of the HTTP listener.
const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 10 * time.Second
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 30 * time.Second
)

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// Serve listens on Config.ServerAddress until ctx is cancelled, then shuts
// the listener down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:           s.Config.ServerAddress,
		Handler:        s.Engine,
		ReadTimeout:    readTimeout,
		WriteTimeout:   writeTimeout,
		IdleTimeout:    idleTimeout,
		MaxHeaderBytes: 1 << 16,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// New creates Server type with instantiated domains and routes.
func New(logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	ids, err := idpkg.New(config.IDStrategy)
	if err != nil {
		return nil, err
	}

	ledger, err := ledgerservice.New(ledgerrepo.NewRepoMem(), ids)
	if err != nil {
		return nil, fmt.Errorf("cannot initialize ledger service: %w", err)
	}

	if config.SeedDemo {
		if err := demo.Load(logger.WithContext(context.Background()), ledger); err != nil {
			return nil, fmt.Errorf("cannot seed demo data: %w", err)
		}
	}

	expansion := &accordion.Controller{}
	panels := accordion.NewManagementPanels()
	notifier := notice.ContextNotifier{Next: notice.LogNotifier{}}

	fundService := fundservice.New(ledger, notifier, expansion)

	bankHandler := bankdelivery.NewHandler(fundService, notifier)
	objectiveHandler := objectivedelivery.NewHandler(fundService, notifier)
	accordionHandler := accordiondelivery.NewHandler(fundService, expansion, panels)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validatorpkg.Register(v); err != nil {
			return nil, err
		}
	}

	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())
	engine.Use(middleware.Notices())

	engine.GET("/banks", bankHandler.List)
	engine.POST("/banks", bankHandler.Create)
	engine.GET("/banks/:id", bankHandler.Get)
	engine.GET("/banks/:id/name", bankHandler.Name)
	engine.DELETE("/banks/:id", bankHandler.Delete)
	engine.GET("/account-types", bankHandler.AccountTypes)
	engine.GET("/total-balance", bankHandler.TotalBalance)
	engine.GET("/overview", bankHandler.Overview)

	engine.GET("/objectives", objectiveHandler.List)
	engine.POST("/objectives", objectiveHandler.Create)
	engine.DELETE("/objectives/:id", objectiveHandler.Delete)
	engine.GET("/icons", objectiveHandler.Icons)

	engine.GET("/accordion", accordionHandler.Get)
	engine.POST("/accordion/:id/toggle", accordionHandler.Toggle)
	engine.GET("/panels", accordionHandler.Panels)
	engine.POST("/panels/:name/toggle", accordionHandler.TogglePanel)

	engine.NoRoute(func(gctx *gin.Context) {
		web.JSON(gctx, http.StatusNotFound, web.Error(errorspkg.ErrRouteNotFound))
	})

	server := &Server{
		Ledger: ledger,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
