// Command coffee-api serves the coffee shop REST API.
//
// @title                      Coffee Orders API
// @version                    1.0
// @description                Catalog, accounts, cart quotes and the order lifecycle.
// @BasePath                   /api
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	_ "github.com/MikeMC777/coffee-orders/docs"
	"github.com/MikeMC777/coffee-orders/internal/auth"
	"github.com/MikeMC777/coffee-orders/internal/config"
	"github.com/MikeMC777/coffee-orders/internal/db"
	"github.com/MikeMC777/coffee-orders/internal/events"
	"github.com/MikeMC777/coffee-orders/internal/idempotency"
	"github.com/MikeMC777/coffee-orders/internal/order"
	"github.com/MikeMC777/coffee-orders/internal/product"
	"github.com/MikeMC777/coffee-orders/internal/telemetry"
	"github.com/MikeMC777/coffee-orders/internal/user"
)

func main() {
	if err := run(); err != nil {
		slog.Error("coffee-api stopped", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	log := telemetry.NewLogger(os.Stdout, cfg.LogLevel, serviceName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.SetupTracer(ctx, serviceName, cfg.OTLPEndpoint)
	if err != nil {
		return err
	}
	defer func() { _ = shutdownTracer(context.Background()) }()

	pool, err := db.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		return err
	}
	defer pool.Close()
	if cfg.Migrate {
		if err := db.Migrate(ctx, pool); err != nil {
			return err
		}
		log.Info("schema applied")
	}

	pub, err := newPublisher(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = pub.Close() }()

	var idem idempotency.Checker
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer func() { _ = rdb.Close() }()
		idem = idempotency.NewStore(rdb, cfg.IdempotencyTTL)
	} else {
		idem = idempotency.NewMemory(cfg.IdempotencyTTL)
	}

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL)
	products := product.NewPGRepo(pool)

	gin.SetMode(gin.ReleaseMode)
	router := newRouter(deps{
		log:      log,
		tokens:   tokens,
		orders:   order.NewService(order.NewPGRepo(pool), products, pub, log),
		products: products,
		users:    user.NewService(user.NewPGRepo(pool), tokens, log),
		idem:     idem,
		ready: func() error {
			pctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return pool.Ping(pctx)
		},
	})

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	grpcSrv := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcSrv, hs)
	lis, err := net.Listen("tcp", cfg.GRPCHealthAddr)
	if err != nil {
		return err
	}
	go func() {
		if err := grpcSrv.Serve(lis); err != nil {
			log.Error("grpc health server", "err", err)
		}
	}()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info("coffee-api listening", "addr", cfg.HTTPAddr, "grpc_health", cfg.GRPCHealthAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return err
	}

	log.Info("shutting down")
	hs.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = srv.Shutdown(shutdownCtx)
	grpcSrv.GracefulStop()
	return err
}

func newPublisher(cfg config.Config) (events.Publisher, error) {
	switch cfg.EventsDriver {
	case "rabbitmq":
		return events.NewRabbitMQ(cfg.RabbitMQURL, cfg.OrderExchange)
	case "kafka":
		return events.NewKafka(cfg.KafkaBrokers, cfg.KafkaTopic), nil
	default:
		return events.Nop{}, nil
	}
}
