package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/findash/backend/internal/advisor"
	"github.com/findash/backend/internal/config"
	v1 "github.com/findash/backend/internal/controllers/v1"
	"github.com/findash/backend/internal/notify"
	"github.com/findash/backend/internal/remote"
	"github.com/findash/backend/internal/router"
	"github.com/findash/backend/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer func() {
		if err := s.Close(); err != nil {
			log.Error().Err(err).Msg("closing storage")
		}
	}()

	var opts []remote.Option
	if s.Cache != nil {
		opts = append(opts, remote.WithCache(s.Cache))
	}
	transactions := remote.New(cfg.TransactionsAPIURL, cfg.RequestTimeout, opts...)

	adv, closeAdvisor, err := advisor.New(ctx, cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer func() {
		if err := closeAdvisor(); err != nil {
			log.Error().Err(err).Msg("closing advisor")
		}
	}()

	var publisher notify.Publisher = notify.Discard{}
	if cfg.AMQPURL != "" {
		p, err := notify.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
		defer p.Close()
		publisher = p
	}

	r, teardown, err := router.Config(cfg.APIURL)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	router.AttachRoutes(v1.Controller{
		Transactions: transactions,
		Budgets:      s.Budgets,
		Advisor:      adv,
		Publisher:    publisher,
		Health:       s,
	}, r.Group("/"))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Str("advisor", cfg.AdvisorProvider).Msg("backend startup complete")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msg(err.Error())
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
}
