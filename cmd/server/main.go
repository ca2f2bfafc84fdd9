package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mkuznecov/shopify_ecom/internal/config"
	"github.com/mkuznecov/shopify_ecom/internal/es"
	"github.com/mkuznecov/shopify_ecom/internal/httpserver"
	"github.com/mkuznecov/shopify_ecom/internal/logging"
	authmw "github.com/mkuznecov/shopify_ecom/internal/middleware/auth"
	loggingmw "github.com/mkuznecov/shopify_ecom/internal/middleware/logging"
	"github.com/mkuznecov/shopify_ecom/internal/mykafka"
	"github.com/mkuznecov/shopify_ecom/internal/repo"
	"github.com/mkuznecov/shopify_ecom/internal/service"
	"github.com/mkuznecov/shopify_ecom/internal/service/search"
	"github.com/mkuznecov/shopify_ecom/internal/tokens"
	"github.com/mkuznecov/shopify_ecom/pkg/db"
)

const productIndex = "product"

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	logger := logging.New(cfg.LogLevel)

	ctx := context.Background()
	database, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	store := &repo.GormRepo{DB: database}

	var indexer *es.Indexer
	searchSvc := &search.Service{Repo: store}
	if cfg.ESURL != "" {
		esClient, err := es.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		indexer = &es.Indexer{Client: esClient, Index: productIndex}
		searchSvc.ES = esClient
		searchSvc.Index = productIndex
	}

	producer := mykafka.NewProducer(cfg.KafkaBrokers)

	tokenSvc := &tokens.Service{
		Secret: cfg.JWTSecret,
		TTL:    time.Duration(cfg.TokenTTLHours) * time.Hour,
	}

	authSvc := &service.AuthService{Repo: store, Tokens: tokenSvc, Producer: producer}
	catalogSvc := &service.CatalogService{Repo: store, Indexer: indexer, Producer: producer}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), middleware.CORS())
	e.Use(loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		AuthHandler:    &httpserver.AuthHTTP{Svc: authSvc},
		ProductHandler: &httpserver.CatalogHTTP{Svc: catalogSvc, Search: searchSvc},
		TokenMW:        authmw.NewTokenMiddleware(tokenSvc),
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
