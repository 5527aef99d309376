package main

import (
	"context"
	"fmt"

	"github.com/MikeRez0/ypdiscount/internal/adapter/auth"
	"github.com/MikeRez0/ypdiscount/internal/adapter/config"
	"github.com/MikeRez0/ypdiscount/internal/adapter/handler/http"
	"github.com/MikeRez0/ypdiscount/internal/adapter/logger"
	"github.com/MikeRez0/ypdiscount/internal/adapter/storage"
	"github.com/MikeRez0/ypdiscount/internal/adapter/storage/repository"
	"github.com/MikeRez0/ypdiscount/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log, err := logger.NewLogger(conf.App)
	if err != nil {
		fmt.Printf("error creating log: %s", err)
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	defer db.Close()

	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}
	tokenService, err := auth.New(conf.Auth)
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	svc, err := service.NewService(repo, tokenService, conf.Pricing.Currency, log.Named("Service"))
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return
	}

	customerHandler, err := http.NewCustomerHandler(svc, log.Named("Customer handler"))
	if err != nil {
		log.Error("customer handler creating error", zap.Error(err))
		return
	}
	quoteHandler, err := http.NewQuoteHandler(svc, log.Named("Quote handler"))
	if err != nil {
		log.Error("quote handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(tokenService, customerHandler, quoteHandler, log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	log.Info("starting server",
		zap.String("address", conf.HTTP.HostString),
		zap.String("currency", conf.Pricing.Currency.String()))

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
