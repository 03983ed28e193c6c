package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/SergeyBogomolovv/marketplace-orders/docs"
	"github.com/SergeyBogomolovv/marketplace-orders/internal/app"
	"github.com/SergeyBogomolovv/marketplace-orders/internal/auth"
	"github.com/SergeyBogomolovv/marketplace-orders/internal/config"
	"github.com/SergeyBogomolovv/marketplace-orders/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-orders/internal/events"
	"github.com/SergeyBogomolovv/marketplace-orders/internal/handler"
	"github.com/SergeyBogomolovv/marketplace-orders/internal/postgres"
	"github.com/SergeyBogomolovv/marketplace-orders/internal/repo"
	"github.com/SergeyBogomolovv/marketplace-orders/internal/service"
	"github.com/SergeyBogomolovv/marketplace-orders/pkg/cache"
	"github.com/SergeyBogomolovv/marketplace-orders/pkg/trm"
	"github.com/SergeyBogomolovv/marketplace-orders/pkg/utils"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

// @title           Marketplace Orders API
// @version         1.0
// @description     Order placement, coupons and order administration
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cliApp := &cli.App{
		Name:   "marketplace-orders",
		Usage:  "marketplace order core",
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the http api and the order intake consumer",
				Action: serve,
			},
			{
				Name:  "migrate",
				Usage: "apply database migrations",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "down", Usage: "roll back all migrations"},
				},
				Action: migrateCmd,
			},
			{
				Name:  "token",
				Usage: "issue a signed credential",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "subject", Required: true},
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "role", Value: string(entities.RoleUser)},
					&cli.BoolFlag{Name: "verified"},
				},
				Action: tokenCmd,
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	godotenv.Load()
}

type store interface {
	service.WorkflowRepo
	service.OrderRepo
	service.NotificationStore
}

func serve(c *cli.Context) error {
	conf := config.New()
	logger := newLogger(conf.Env)
	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	var (
		orderRepo store
		txManager trm.Manager
		closers   []io.Closer
	)

	switch conf.Storage.Driver {
	case config.StorageDriverMemory:
		mem := repo.NewMemoryRepo()
		if conf.Storage.SeedFile != "" {
			if err := loadSeed(mem, conf.Storage.SeedFile); err != nil {
				return err
			}
		}
		orderRepo, txManager = mem, mem
		logger.Info("using in-memory storage")
	default:
		if conf.Postgres.AutoMigrate {
			if err := postgres.Migrate(conf.Postgres, false); err != nil {
				return err
			}
		}
		db, err := connectPostgres(logger, conf.Postgres)
		if err != nil {
			return err
		}
		closers = append(closers, db)
		orderRepo, txManager = repo.NewPostgresRepo(db), trm.NewManager(db)
		logger.Info("postgres connected")
	}

	gate := auth.NewGate(conf.Auth)
	lru := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	var publisher service.EventPublisher
	if conf.Kafka.Enabled {
		p := events.NewPublisher(logger, conf.Kafka)
		publisher = p
		closers = append(closers, p)
	}
	emitter := service.NewNotificationEmitter(logger, orderRepo, publisher)

	workflow := service.NewOrderWorkflow(logger, txManager, gate, orderRepo, emitter, service.WorkflowOptions{
		NumberAttempts:   conf.Orders.NumberAttempts,
		SingleUseCoupons: conf.Orders.SingleUseCoupons,
		StrictStock:      conf.Orders.StrictStock,
	})
	orderService := service.NewOrderService(logger, txManager, gate, orderRepo, lru)

	httpHandler := handler.NewHTTPHandler(logger, gate, conf.Auth.CookieName, workflow, orderService)

	application := app.New(logger, conf)
	application.SetHTTPHandlers(httpHandler)
	if conf.Kafka.Enabled {
		handler.RegisterMetrics()
		application.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, gate, workflow))
	}
	application.SetStarters(lru, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})
	application.SetClosers(closers...)

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := application.Start(ctx); err != nil {
		return fmt.Errorf("failed to start app: %w", err)
	}
	<-ctx.Done()
	return application.Stop()
}

func migrateCmd(c *cli.Context) error {
	conf := config.New()
	logger := newLogger(conf.Env)

	if err := postgres.Migrate(conf.Postgres, c.Bool("down")); err != nil {
		return err
	}
	logger.Info("migrations applied", slog.Bool("down", c.Bool("down")))
	return nil
}

func tokenCmd(c *cli.Context) error {
	conf := config.New()
	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	token, err := auth.NewGate(conf.Auth).Issue(entities.Identity{
		SubjectID: c.String("subject"),
		Email:     c.String("email"),
		Role:      entities.Role(c.String("role")),
		Verified:  c.Bool("verified"),
	})
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	fmt.Fprintln(c.App.Writer, token)
	return nil
}

type seedLoader interface {
	LoadSeed(r io.Reader) error
}

func loadSeed(l seedLoader, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	if err := l.LoadSeed(f); err != nil {
		return fmt.Errorf("failed to load seed: %w", err)
	}
	return nil
}

// connectPostgres retries the initial connection while the database starts.
func connectPostgres(logger *slog.Logger, cfg config.Postgres) (*sqlx.DB, error) {
	var db *sqlx.DB
	err := utils.Retry(utils.RetryConfig{
		MaxAttempts:  5,
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     5 * time.Second,
	}, func() error {
		var err error
		db, err = postgres.New(cfg)
		if err != nil {
			logger.Warn("postgres not ready", slog.Any("error", err))
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
