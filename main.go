package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/pennyledger/expense-server/api"
	"github.com/pennyledger/expense-server/internal/config"
	"github.com/pennyledger/expense-server/internal/logging"
	"github.com/pennyledger/expense-server/internal/service"
	"github.com/pennyledger/expense-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("expense-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	// A missing document store is not fatal: the API stays up and every
	// store-backed operation reports the database as not configured.
	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Error("storage.NewStorage")
		dbStorage = nil
	}

	svc := service.NewService(dbStorage)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.Port,
			Service: svc,
			Storage: dbStorage,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
