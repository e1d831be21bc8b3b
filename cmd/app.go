package cmd

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"hallo/internal/components"
	"hallo/internal/config"
	"hallo/pkg/logger"
)

func Run() error {
	bootLogger := components.SetupLogger("local", os.Stdout)
	cfg, err := config.Load(bootLogger)
	if err != nil {
		bootLogger.Error("load config failed", "err", err)
		return err
	}

	log := logger.New(cfg.Env, cfg.LogDebug, os.Stdout)

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	comps, err := components.InitComponents(appCtx, cfg, log)
	if err != nil {
		log.Error("could not init components", "err", err)
		return err
	}

	ctx, stop := context.WithCancel(appCtx)
	defer stop()

	errc := make(chan error, 1)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := comps.HttpServer.Run(ctx); err != nil {
			log.Error("http server failed", "err", err)
			errc <- err
		}
		log.Info("http server stopped")
	}()

	quitChan := make(chan os.Signal, 1)
	signal.Notify(quitChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quitChan)

	var runErr error
	select {
	case sig := <-quitChan:
		log.Info("captured signal, initiating shutdown", "signal", sig.String())
	case runErr = <-errc:
	}

	stop()
	wg.Wait()

	log.Info("shutting down the services...")
	comps.ShutdownAll()
	log.Info("gracefully shutting down the servers")

	return runErr
}
