package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blogem/opsledger/authenticator"
	"github.com/blogem/opsledger/controllers"
	"github.com/blogem/opsledger/metrics"
	authmiddleware "github.com/blogem/opsledger/middleware"
	"github.com/blogem/opsledger/repositories"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	// provider stays a nil interface when login is disabled
	var provider authenticator.Provider
	if a.cfg.Auth.OIDCEnabled() {
		p, err := authenticator.NewOpenIDProvider(ctx, authenticator.OpenIDConfig{
			Domain:       a.cfg.Auth.Domain,
			ClientID:     a.cfg.Auth.ClientID,
			ClientSecret: a.cfg.Auth.ClientSecret,
			CallbackURL:  a.cfg.Auth.CallbackURL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize OpenID provider: %w", err)
		}
		provider = p
	} else {
		a.logger.Warn("browser login disabled, AUTH0_DOMAIN is not set")
	}

	var tokens *authenticator.TokenIssuer
	if a.cfg.Auth.JWTSecret != "" {
		tokens, err = authenticator.NewTokenIssuer(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL)
		if err != nil {
			return err
		}
	}

	ctrl := controllers.NewControllers(a.srvs, provider, tokens, a.logger)
	r, err := setupRouter(routerDeps{
		ctrl:          ctrl,
		tokens:        tokens,
		members:       a.srvs.Organization,
		audit:         a.repos.Audit,
		logger:        a.logger,
		registry:      a.registry,
		secureCookies: a.cfg.Server.UseHTTPS,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + a.cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("opsledger starting",
			zap.String("addr", srv.Addr),
			zap.String("database", a.cfg.Database.Path),
			zap.Bool("login", provider != nil),
			zap.Bool("api_tokens", tokens != nil))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down cleanly: %w", err)
	}
	return nil
}

type routerDeps struct {
	ctrl          *controllers.Controllers
	tokens        *authenticator.TokenIssuer
	members       authmiddleware.MembershipResolver
	audit         repositories.AuditRepository
	logger        *zap.Logger
	registry      *prometheus.Registry
	secureCookies bool
}

// setupRouter configures all routes
func setupRouter(d routerDeps) (*chi.Mux, error) {
	r := chi.NewRouter()

	r.Use(authmiddleware.RequestLogger(d.logger, "/health", "/metrics"))
	r.Use(metrics.NewHTTP(d.registry).Middleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second)) // 60 second timeout for OAuth callbacks
	r.Use(middleware.Compress(5))

	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "opsledger_session",
		Secure:         d.secureCookies,
		Gclifetime:     3600,
		Maxlifetime:    3600,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)

	// PUBLIC ROUTES (no authentication required)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"status": "healthy", "service": "opsledger"}`)
	})
	r.Handle("/metrics", promhttp.HandlerFor(d.registry, promhttp.HandlerOpts{Registry: d.registry}))
	d.ctrl.MountAuth(r)

	// PROTECTED ROUTES (authentication required)
	d.ctrl.MountAPI(r, controllers.Guards{
		Auth:         authmiddleware.RequireAuth(d.tokens),
		Organization: authmiddleware.RequireOrganization(d.members, d.logger),
		Audit:        authmiddleware.AuditLogger(d.audit, d.logger),
	})

	return r, nil
}
