// cmd/server/main.go
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"warsztat/internal/auth"
	"warsztat/internal/clock"
	"warsztat/internal/config"
	"warsztat/internal/db"
	"warsztat/internal/handlers"
	"warsztat/internal/logging"
	"warsztat/internal/mailer"
	"warsztat/internal/middleware"
	"warsztat/internal/migrations"
	"warsztat/internal/pdf"
	"warsztat/internal/repo"
	"warsztat/internal/report"
	"warsztat/internal/scheduler"
)

func main() {
	// --- Load config (config.yaml + env overrides) ---
	cfg := config.Load()

	// --- Logger ---
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format == "json")

	// Session cookie security (dev often needs Secure=false)
	auth.SetCookieSecurity(cfg.Security.Session.CookieSecure)
	auth.SetCookieSameSite(cfg.Security.Session.SameSite)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Background session sweeper ---
	interval := cfg.Security.Session.SweeperInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	go auth.DefaultStore.StartSweeper(ctx, interval)

	// --- Migrate and connect to Postgres ---
	if err := migrations.Up(cfg.Database.URL); err != nil {
		slog.Error("migration error", "err", err)
		os.Exit(1)
	}

	slog.Debug("connecting to database")
	pool, err := db.Connect(ctx, cfg.Database.URL)
	if err != nil {
		slog.Error("db connect error", "err", err)
		os.Exit(1)
	}
	defer pool.Close()
	slog.Debug("database connection ready")

	r := repo.New(pool)

	// --- Report pipeline: selector -> HTML -> PDF -> mail ---
	clk := clock.System()
	converter := pdf.NewConverter()
	sender := mailer.NewSMTPSender(cfg.SMTP)
	svc := report.NewService(r, converter, sender, clk, cfg.Reports.AdminEmail)

	// --- Schedulers ---
	daily := scheduler.NewDaily("daily-report", cfg.DailyReportInterval(), svc.EmailActiveOrdersReport)
	if err := daily.Start(ctx); err != nil {
		slog.Error("scheduler error", "err", err)
		os.Exit(1)
	}
	defer daily.Stop()

	open := scheduler.NewOpenOrders("open-orders-report",
		cfg.Reports.OpenOrdersInterval, cfg.Reports.RetryInterval, svc.EmailActiveOrdersReport)
	go open.Run(ctx)

	// --- Router ---
	mux := chi.NewRouter()

	mux.Use(middleware.RequestID(false))
	mux.Use(middleware.SlogRequestLogger)

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.HTTP.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Local auth routes
	mux.Post("/auth/login", auth.LoginHandler(r, cfg.Security.Session.TTL))
	mux.Post("/auth/logout", auth.LogoutHandler())
	mux.With(middleware.RequireAuth(r)).Get("/auth/me", auth.ProfileHandler(r))

	// Domain routes
	handlers.RegisterRoutes(mux, r, svc, clk)

	// Health root
	mux.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("OK"))
	})

	// --- Start server ---
	srv := &http.Server{Addr: cfg.HTTP.Addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("listening", "addr", cfg.HTTP.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "err", err)
		os.Exit(1)
	}
}
