package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	jwttoken "phonebookd/internal/jwt_token"
	"phonebookd/internal/phonebook/drivers/memory"
	"phonebookd/internal/phonebook/drivers/redissim"
	"phonebookd/internal/phonebook/drivers/seed"
	"phonebookd/internal/phonebook/handler"
	phonebookmetrics "phonebookd/internal/phonebook/metrics"
	"phonebookd/internal/phonebook/ports"
	"phonebookd/internal/phonebook/registry"
	"phonebookd/internal/phonebook/service"
	"phonebookd/internal/platform/config"
	"phonebookd/internal/platform/httpserver"
	"phonebookd/internal/platform/kafka"
	"phonebookd/internal/platform/logger"
	platformmetrics "phonebookd/internal/platform/metrics"
	authmw "phonebookd/internal/platform/middleware"
	"phonebookd/internal/platform/postgres"
	redisclient "phonebookd/internal/platform/redis"
	"phonebookd/pkg/platform/audit"
	"phonebookd/pkg/platform/audit/publisher"
	auditmemory "phonebookd/pkg/platform/audit/store/memory"
	auditpostgres "phonebookd/pkg/platform/audit/store/postgres"
	"phonebookd/pkg/platform/audit/worker"
	"phonebookd/pkg/platform/httputil"
	"phonebookd/pkg/platform/middleware/metadata"
	"phonebookd/pkg/platform/middleware/request"
)

// main wires drivers, phonebook instances, the audit trail and the HTTP
// router, then runs until SIGINT or SIGTERM.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg, log); err != nil {
		log.Error("phonebookd stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seeds, err := loadSeeds(cfg.Phonebook.SeedFile)
	if err != nil {
		return err
	}

	auditSink, err := buildAudit(ctx, cfg.Audit, log)
	if err != nil {
		return err
	}
	defer auditSink.close()

	drivers := registry.New()
	memOpts := []memory.Option{memory.WithLatency(cfg.Phonebook.DriverLatency)}
	if seeds != nil {
		memOpts = append(memOpts, memory.WithSeed(seeds))
	} else {
		memOpts = append(memOpts, memory.WithBlankSIMs())
	}
	if err := drivers.Register(memory.New(memOpts...)); err != nil {
		return err
	}

	rc, err := redisclient.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if rc != nil {
		defer rc.Close()
		redisDriver := redissim.New(rc.Client)
		if err := provisionRedisSIMs(ctx, redisDriver, seeds, cfg.Phonebook.Modems); err != nil {
			return err
		}
		if err := drivers.Register(redisDriver); err != nil {
			return err
		}
		log.Info("redis SIM driver enabled")
	}

	pbMetrics := phonebookmetrics.New()
	mgr := registry.NewManager(drivers,
		registry.WithLogger(log),
		registry.WithMetrics(pbMetrics),
		registry.WithServiceOptions(
			service.WithLogger(log),
			service.WithMetrics(pbMetrics),
			service.WithAuditPublisher(auditSink.publisher),
			service.WithStorages(cfg.Phonebook.Storages),
		),
	)
	if err := attachConfiguredModems(ctx, mgr, cfg.Phonebook.Modems, log); err != nil {
		return err
	}

	jwtService := jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience)
	router := newRouter(
		handler.New(handler.NewManagerInstances(mgr), log),
		jwttoken.NewValidator(jwtService),
		platformmetrics.New(),
		log,
	)
	srv := httpserver.New(cfg.Addr, router, httpserver.WithWriteTimeout(cfg.WriteTimeout))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting phonebookd", "addr", cfg.Addr, "drivers", drivers.Names())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	if auditSink.relay != nil {
		g.Go(func() error {
			err := auditSink.relay.Run(gctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
		return mgr.Close(shutdownCtx)
	})

	return g.Wait()
}

// newRouter serves /health and /metrics openly; everything under /modems
// requires a bearer token.
func newRouter(h *handler.Handler, validator authmw.TokenValidator, httpMetrics *platformmetrics.Metrics, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(request.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(httpMetrics.Middleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", platformmetrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(authmw.RequireAuth(validator, log))
		h.Register(r)
	})
	return r
}

func loadSeeds(path string) (*seed.File, error) {
	if path == "" {
		return nil, nil
	}
	f, err := seed.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load SIM seed: %w", err)
	}
	return f, nil
}

// provisionRedisSIMs writes seeded SIMs into Redis for every modem configured
// with the redis driver. Already provisioned SIMs are overwritten.
func provisionRedisSIMs(ctx context.Context, d *redissim.Driver, seeds *seed.File, modems map[string]string) error {
	for id, driver := range modems {
		if driver != redissim.Name {
			continue
		}
		sim, ok := seeds.Lookup(id)
		if !ok {
			sim = seed.Blank(id)
		}
		if err := d.Provision(ctx, sim); err != nil {
			return fmt.Errorf("provision %s: %w", id, err)
		}
	}
	return nil
}

func attachConfiguredModems(ctx context.Context, mgr *registry.Manager, modems map[string]string, log *slog.Logger) error {
	ids := make([]string, 0, len(modems))
	for id := range modems {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if _, err := mgr.Create(ctx, ports.ModemInfo{ID: id}, modems[id]); err != nil {
			return fmt.Errorf("attach modem %s: %w", id, err)
		}
		log.Info("phonebook attached", "modem_id", id, "driver", modems[id])
	}
	return nil
}

type auditStack struct {
	publisher *publisher.Publisher
	relay     *worker.Worker
	db        *sql.DB
	producer  *kafka.Producer
}

func (a *auditStack) close() {
	a.publisher.Close()
	if a.producer != nil {
		a.producer.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

// buildAudit keeps events in memory unless a database is configured. With a
// database, events land in the outbox and are relayed to Kafka when brokers
// are set.
func buildAudit(ctx context.Context, cfg config.AuditConfig, log *slog.Logger) (*auditStack, error) {
	opts := []publisher.Option{
		publisher.WithLogger(log),
		publisher.WithAsyncBuffer(cfg.AsyncBuffer),
		publisher.WithSampler(publisher.NewSampler(cfg.OpsSampleRate)),
		publisher.WithMetrics(publisher.NewMetrics()),
	}

	db, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if db == nil {
		var store audit.Store = auditmemory.NewInMemoryStore(auditmemory.WithRetention(cfg.MemoryRetention))
		log.Info("audit events kept in memory", "retention_per_modem", cfg.MemoryRetention)
		return &auditStack{publisher: publisher.NewPublisher(store, opts...)}, nil
	}

	outbox := auditpostgres.New(db)
	if err := outbox.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	stack := &auditStack{publisher: publisher.NewPublisher(outbox, opts...), db: db}
	if len(cfg.KafkaBrokers) == 0 {
		log.Info("audit outbox enabled without relay")
		return stack, nil
	}

	producer, err := kafka.NewProducer(ctx, cfg.KafkaBrokers, cfg.Topic)
	if err != nil {
		stack.close()
		return nil, err
	}
	stack.producer = producer
	if err := producer.EnsureTopic(ctx, 3, 1); err != nil {
		stack.close()
		return nil, err
	}
	stack.relay = worker.NewWorker(outbox, producer,
		worker.WithLogger(log),
		worker.WithInterval(cfg.PollInterval),
		worker.WithBatchSize(cfg.BatchSize),
	)
	log.Info("audit outbox relay enabled", "topic", cfg.Topic)
	return stack, nil
}
