package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"brandsite/internal/config"
	"brandsite/internal/http-server/handlers/account/createAccount"
	"brandsite/internal/http-server/handlers/booking/createBooking"
	"brandsite/internal/http-server/handlers/booking/getSlots"
	"brandsite/internal/http-server/handlers/booking/listBookings"
	"brandsite/internal/http-server/handlers/contact/createContact"
	"brandsite/internal/http-server/handlers/contact/listContacts"
	"brandsite/internal/http-server/middleware/mwlogger"
	"brandsite/internal/lib/logger/handlers/slogpretty"
	"brandsite/internal/lib/logger/sl"
	"brandsite/internal/mailer"
	"brandsite/internal/notify"
	"brandsite/internal/storage/memstore"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting brandsite backend", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage := memstore.New()

	var m mailer.Mailer
	if cfg.Env == envProd {
		m = mailer.NewSMTPMailer(cfg.SMTP)
		log.Info("using SMTP mailer",
			slog.String("host", cfg.SMTP.Host),
			slog.Int("port", cfg.SMTP.Port),
		)
	} else {
		m = mailer.NewLogMailer(log)
		log.Info("using log mailer, notifications are not sent")
	}

	dispatcher := notify.New(m, cfg.Notify.OwnerEmail)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Route("/api", func(r chi.Router) {
		r.Post("/bookings", createBooking.New(log, storage, dispatcher))
		r.Get("/bookings", listBookings.New(log, storage))
		r.Get("/booking-slots", getSlots.New(log, time.Now))
		r.Post("/contact", createContact.New(log, storage, dispatcher))
		r.Get("/contacts", listContacts.New(log, storage))
		r.Post("/accounts", createAccount.New(log, storage))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = setupPrettySlog()
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
