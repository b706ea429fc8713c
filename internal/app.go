package internal

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"vg-ms-user/config"
	"vg-ms-user/internal/application/ports"
	"vg-ms-user/internal/application/services"
	"vg-ms-user/internal/domain/user"
	"vg-ms-user/internal/domain/user_sede"
	"vg-ms-user/internal/infrastructure/db/mongodb"
	mongoUser "vg-ms-user/internal/infrastructure/db/mongodb/user"
	mongoUserSede "vg-ms-user/internal/infrastructure/db/mongodb/user_sede"
	"vg-ms-user/internal/infrastructure/db/postgres"
	pgUser "vg-ms-user/internal/infrastructure/db/postgres/user"
	pgUserSede "vg-ms-user/internal/infrastructure/db/postgres/user_sede"
	"vg-ms-user/internal/infrastructure/jwt"
	"vg-ms-user/internal/infrastructure/logger"
	"vg-ms-user/internal/infrastructure/metrics"
	"vg-ms-user/internal/infrastructure/mq"
	"vg-ms-user/internal/infrastructure/registry"
	"vg-ms-user/internal/interface/api/rest"
	"vg-ms-user/internal/interface/api/rest/middleware"
	"vg-ms-user/pkg/rmqconsumer"
)

type App struct {
	logger     *zap.Logger
	cfg        config.Config
	pg         *pgxpool.Pool
	mongo      *mongo.Database
	httpSrv    *http.Server
	router     *gin.Engine
	mCounter   *prometheus.CounterVec
	mq         ports.RabbitMQ
	mqConsumer ports.RMQConsumer

	userService     ports.UserService
	userSedeService ports.UserSedeService
}

// NewApp wires config, logging, the configured store and the event publisher.
// The HTTP surface and the audit consumer are added by InitControllers and
// InitConsumer so one-shot commands can skip them.
func NewApp(ctx context.Context) (*App, error) {
	// config
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}
	cfg := config.Load()

	// logger
	lg, err := logger.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("cannot initialize zap logger: %w", err)
	}

	a := &App{
		logger:   lg,
		cfg:      cfg,
		mCounter: metrics.NewCounter(),
	}

	// store
	if err = a.initStore(ctx); err != nil {
		a.Close()
		return nil, err
	}

	// rabbitMQ
	rabbitDsn, err := cfg.AMQPDSN()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("RabbitMQ config error: %w", err)
	}
	rbMQ := mq.New(cfg.MQ, lg)
	if err = rbMQ.Connect(ctx, rabbitDsn); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to connect to rabbitMQ: %w", err)
	}
	a.mq = rbMQ
	if err = rbMQ.Init(); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed init rabbitMQ: %w", err)
	}

	return a, nil
}

func (a *App) initStore(ctx context.Context) error {
	switch a.cfg.Store.Driver {
	case config.StoreDriverPostgres:
		dsn, err := a.cfg.DBDSN()
		if err != nil {
			return fmt.Errorf("DB config error: %w", err)
		}
		pool, err := postgres.New(ctx, a.logger, dsn)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		a.pg = pool
		return postgres.EnsureSchema(ctx, pool)

	case config.StoreDriverMongo:
		uri, err := a.cfg.MongoURI()
		if err != nil {
			return fmt.Errorf("Mongo config error: %w", err)
		}
		db, err := mongodb.New(ctx, a.logger, uri, a.cfg.Mongo.Database)
		if err != nil {
			return err
		}
		a.mongo = db
		return mongodb.EnsureIndexes(ctx, db)

	default:
		return fmt.Errorf("unknown store driver %q", a.cfg.Store.Driver)
	}
}

func (a *App) repositories() (user.Repository, user_sede.Repository) {
	if a.mongo != nil {
		return mongoUser.NewRepository(a.mongo), mongoUserSede.NewRepository(a.mongo)
	}
	return pgUser.NewRepository(a.pg), pgUserSede.NewRepository(a.pg)
}

func (a *App) InitServices() {
	userRepo, userSedeRepo := a.repositories()
	registryClient := registry.New(a.cfg.Registry, a.logger)

	a.userService = services.NewUserService(userRepo, registryClient, user.DefaultPolicy(), a.mq, a.mCounter)
	a.userSedeService = services.NewUserSedeService(userSedeRepo, registryClient, a.userService, a.mq, a.mCounter)
}

func (a *App) InitControllers() {
	// router
	switch a.cfg.App.Env {
	case gin.ReleaseMode, "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	a.router = gin.New()
	a.router.Use(gin.Recovery())
	a.router.Use(middleware.RequestLogGin(a.logger, a.mCounter))

	a.httpSrv = &http.Server{
		Addr:              a.cfg.App.Host + ":" + a.cfg.App.Port,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	jwtService := jwt.New(a.cfg.App.JWTSecret)

	// controllers
	rest.NewAuthController(a.router, jwtService)
	rest.NewUserController(a.router, a.userService, a.logger, jwtService)
	rest.NewPermissionController(a.router, a.userService, a.logger, jwtService)
	rest.NewUserSedeController(a.router, a.userSedeService, a.logger, jwtService)

	// ops
	rest.NewHealthController(a.router, a.cfg.App.Name, jwtService)
	a.router.GET(rest.RouteMetrics, gin.WrapH(promhttp.Handler()))
}

// InitConsumer attaches the audit consumer that prints every published event.
func (a *App) InitConsumer() error {
	rabbitDsn, err := a.cfg.AMQPDSN()
	if err != nil {
		return err
	}
	c := rmqconsumer.New(a.cfg.MQ, a.logger, os.Stdout)
	if err = c.Connect(rabbitDsn); err != nil {
		return fmt.Errorf("failed to connect rabbitMQ consumer: %w", err)
	}
	if err = c.Init(); err != nil {
		return fmt.Errorf("failed to init rabbitMQ consumer: %w", err)
	}
	a.mqConsumer = c

	return nil
}

func (a *App) Close() {
	if a.pg != nil {
		a.pg.Close()
	}
	if a.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.mongo.Client().Disconnect(ctx); err != nil {
			a.logger.Error("mongodb disconnect error", zap.Error(err))
		}
	}
	if a.mq != nil && a.mq.GetConn() != nil {
		_ = a.mq.GetConn().Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// Run - The central place to launch and manage our application and
// parallel processes through a single context.
func (a *App) Run(ctx context.Context) error {
	// context with os signals cancel chan
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name, zap.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		a.mq.PublisherWorker(ctx)
		return nil
	})

	if a.mqConsumer != nil {
		g.Go(func() error {
			a.mqConsumer.DeliveryWorker(ctx)
			return nil
		})
	}

	<-ctx.Done()

	a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown "+a.cfg.App.Name+" error", zap.Error(err))
		return err
	}

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

// MigratePermissions runs the permission backfill once, publishing its events
// before returning.
func (a *App) MigratePermissions(ctx context.Context) (user.Users, error) {
	pubCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		a.mq.PublisherWorker(pubCtx)
	}()

	users, err := a.userService.MigrateUsersWithDefaultPermissions(ctx)

	// the worker drains buffered events on cancel
	cancel()
	<-done

	return users, err
}

func (a *App) Logger() *zap.Logger { return a.logger }
