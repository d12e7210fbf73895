package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"thermostat_api/docs"
	"thermostat_api/internal/config"
	"thermostat_api/internal/handlers"
	"thermostat_api/internal/history"
	"thermostat_api/internal/indicator"
	"thermostat_api/internal/logger"
	"thermostat_api/internal/notify"
	"thermostat_api/internal/repository"
	"thermostat_api/internal/server"
	"thermostat_api/internal/service"
	"thermostat_api/internal/validation"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// @title        Termostato API
// @version      1.0.0
// @description  State and validation service for a simulated thermostat.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.Log.Level)
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	docs.SwaggerInfo.Version = cfg.Version

	repos, err := repository.NewFromConfig(cfg.Storage)
	if err != nil {
		log.Fatalw("failed to open state store", "driver", cfg.Storage.Driver, "err", err)
	}
	defer func() {
		if cerr := repos.Close(); cerr != nil {
			log.Errorw("failed to close state store", "err", cerr)
		}
	}()

	publisher := newPublisher(cfg.MQTT, log)
	defer func() { _ = publisher.Close() }()

	thermostat, err := newThermostat(cfg, repos, publisher, log)
	if err != nil {
		log.Fatalw("failed to build thermostat", "err", err)
	}

	services := service.NewService(thermostat, service.NewMonitoringService(cfg.Version, time.Now))
	apiHandler := handlers.NewHandler(services, log.Named("http"), handlers.WithStreamInterval(cfg.WS.Interval))

	srv := &server.Server{}
	runHTTPServer(srv, server.PortAddr(cfg.Port), apiHandler, log)

	waitForShutdown(srv, log)
}

func newThermostat(cfg *config.Config, repos *repository.Repository, pub notify.Publisher, log *logger.Logger) (*service.ThermostatService, error) {
	calc, err := indicator.New(cfg.Indicator.Levels, cfg.Indicator.NormalThreshold, cfg.Indicator.LowThreshold)
	if err != nil {
		return nil, err
	}

	thermostat, err := service.NewThermostatService(service.Options{
		Rules:      validation.NewRules(cfg.ValidationBounds()),
		Calculator: calc,
		History:    history.NewStore(cfg.History.Capacity),
		Store:      repos.StateRepo,
		Notifier:   pub,
		Logger:     log.Named("thermostat"),
		Initial: &service.InitialValues{
			Ambient: cfg.Initial.Ambient,
			Target:  cfg.Initial.Target,
			Battery: cfg.Initial.Battery,
		},
	})
	if err != nil {
		return nil, err
	}

	if err := thermostat.LoadState(context.Background()); err != nil {
		return nil, err
	}
	return thermostat, nil
}

// newPublisher falls back to a no-op publisher when MQTT is off or unreachable.
func newPublisher(cfg config.MQTTConfig, log *logger.Logger) notify.Publisher {
	if !cfg.Enabled {
		return notify.Nop{}
	}
	pub, err := notify.NewMQTTPublisher(notify.MQTTConfig{
		Broker:   cfg.Broker,
		ClientID: cfg.ClientID,
		Topic:    cfg.Topic,
		QoS:      byte(cfg.QoS),
		Retained: cfg.Retained,
	})
	if err != nil {
		log.Warnw("mqtt publisher disabled", "broker", cfg.Broker, "err", err)
		return notify.Nop{}
	}
	log.Infow("mqtt publisher connected", "broker", cfg.Broker, "topic", cfg.Topic)
	return pub
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, addr string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "addr", addr)
		if err := srv.Run(addr, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
