package main

import (
	"context"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"

	"github.com/dhananjayvscot/camel"
	"github.com/dhananjayvscot/camel/config"
	"github.com/dhananjayvscot/camel/logger"
	"github.com/dhananjayvscot/camel/rest"
	"github.com/dhananjayvscot/camel/rest/consul"
	"github.com/dhananjayvscot/camel/rest/handler"
	"github.com/dhananjayvscot/camel/rest/metrics"
)

func newFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "Path to the YAML config file",
			EnvVars: []string{"CAMEL_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "name",
			Usage:   "Name of the routing context",
			EnvVars: []string{"CAMEL_NAME"},
		},
		&cli.StringFlag{
			Name:    "log_level",
			Usage:   "Log level: trace, debug, info, warn, error or fatal",
			EnvVars: []string{"CAMEL_LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "log_encoding",
			Usage:   "Log encoding: console or json",
			EnvVars: []string{"CAMEL_LOG_ENCODING"},
		},
		&cli.StringFlag{
			Name:    "management_address",
			Usage:   "Address the management endpoints listen on e.g 0.0.0.0:8080",
			EnvVars: []string{"CAMEL_MANAGEMENT_ADDRESS"},
		},
		&cli.BoolFlag{
			Name:    "registry_strict",
			Usage:   "Reject registry changes while the context is not started",
			EnvVars: []string{"CAMEL_REGISTRY_STRICT"},
		},
		&cli.StringFlag{
			Name:    "consul_address",
			Usage:   "Export REST services to the consul agent at this address",
			EnvVars: []string{"CAMEL_CONSUL_ADDRESS"},
		},
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "camel"
	app.Usage = "Run a routing context and serve its REST services"
	app.Version = version
	app.Flags = newFlags()
	app.Action = run
	return app
}

// configure loads the config file and applies the flags set on top of it.
func configure(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("name") {
		cfg.Name = c.String("name")
	}
	if c.IsSet("log_level") {
		cfg.Log.Level = c.String("log_level")
	}
	if c.IsSet("log_encoding") {
		cfg.Log.Encoding = c.String("log_encoding")
	}
	if c.IsSet("management_address") {
		cfg.Management.Address = c.String("management_address")
	}
	if c.IsSet("registry_strict") {
		cfg.Registry.Strict = c.Bool("registry_strict")
	}
	if c.IsSet("consul_address") {
		cfg.Consul.Enabled = true
		cfg.Consul.Address = c.String("consul_address")
	}

	return cfg, nil
}

// newMux serves the service listing and the prometheus metrics.
func newMux(cfg *config.Config, reg rest.Registry) (*http.ServeMux, error) {
	preg, err := metrics.NewRegistry(reg)
	if err != nil {
		return nil, err
	}

	h := handler.NewHandler(handler.WithRegistry(reg), handler.WithPath(cfg.Management.Path))

	mux := http.NewServeMux()
	mux.Handle(cfg.Management.Path, h)
	mux.Handle(cfg.Management.Path+"/", h)
	mux.Handle(cfg.Management.MetricsPath, promhttp.HandlerFor(preg, promhttp.HandlerOpts{ErrorHandling: promhttp.ContinueOnError}))
	return mux, nil
}

func run(c *cli.Context) error {
	cfg, err := configure(c)
	if err != nil {
		return err
	}

	lvl, err := logger.GetLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if err := logger.Init(logger.WithLevel(lvl), logger.WithEncoding(cfg.Log.Encoding)); err != nil {
		return err
	}
	log := logger.NewHelper(logger.DefaultLogger).WithFields(map[string]interface{}{"context": cfg.Name})

	log.Debugf("Preloading %d rest services from config", len(cfg.Services))
	reg := rest.NewRegistry(
		rest.Strict(cfg.Registry.Strict),
		rest.Services(cfg.Definitions()...),
	)
	cc := camel.NewContext(camel.Name(cfg.Name), camel.RestRegistry(reg))
	if err := cc.Start(); err != nil {
		return err
	}

	mux, err := newMux(cfg, reg)
	if err != nil {
		cc.Stop()
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	errCh := make(chan error, 2)

	srv := &http.Server{Addr: cfg.Management.Address, Handler: mux}
	go func() {
		log.Infof("Management [http] Listening on %s", cfg.Management.Address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	var wg sync.WaitGroup
	exportCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.Consul.Enabled {
		exp, err := consul.NewExporter(
			consul.Registry(reg),
			consul.Name(cfg.Name),
			consul.Prefix(cfg.Consul.Prefix),
			consul.Address(cfg.Consul.Address),
		)
		if err != nil {
			srv.Close()
			cc.Stop()
			return err
		}

		log.Infof("Exporting rest services to consul at %s", cfg.Consul.Address)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := exp.Run(exportCtx); err != nil {
				errCh <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		log.Info("Received signal, shutting down")
	case err = <-errCh:
		log.WithError(err).Error("Shutting down")
	}

	cancel()
	wg.Wait()

	sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer scancel()
	if serr := srv.Shutdown(sctx); serr != nil && err == nil {
		err = serr
	}

	if serr := cc.Stop(); serr != nil && err == nil {
		err = serr
	}
	return err
}
