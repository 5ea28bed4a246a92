package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/spellbook-api/internal/config"
	"github.com/KirkDiggler/spellbook-api/internal/handlers/spellbook/v1alpha1"
	"github.com/KirkDiggler/spellbook-api/internal/observe"
	"github.com/KirkDiggler/spellbook-api/internal/orchestrators/spellbook"
	"github.com/KirkDiggler/spellbook-api/internal/pkg/clock"
	"github.com/KirkDiggler/spellbook-api/internal/pkg/idgen"
	"github.com/KirkDiggler/spellbook-api/internal/redis"
	"github.com/KirkDiggler/spellbook-api/internal/repositories/spells"
	"github.com/KirkDiggler/spellbook-api/internal/services/catalogloader"
)

var (
	configPath    string
	grpcPort      int
	catalogSource string
	catalogFile   string
	postgresDSN   string
	redisEndpoint string
	metricsAddr   string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the spellbook gRPC server. The catalog is loaded once at startup and
reloaded on SIGHUP or through the ReloadCatalog RPC.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&catalogSource, "source", string(config.SourceSeed),
		"Catalog source (seed, file, postgres, upstream)")
	serverCmd.Flags().StringVar(&catalogFile, "file", "", "Catalog file for the file source")
	serverCmd.Flags().StringVar(&postgresDSN, "postgres-dsn", "", "PostgreSQL DSN for the postgres source")
	serverCmd.Flags().StringVar(&redisEndpoint, "redis", "", "Redis endpoint for the snapshot cache (empty disables it)")
	serverCmd.Flags().StringVar(&metricsAddr, "metrics-addr", ":9090", "Prometheus metrics listen address")
}

// loadServerConfig reads the config file, if any, and applies explicitly set
// flags on top of it.
func loadServerConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Server.Port = grpcPort
	}
	if flags.Changed("log-level") {
		cfg.Server.LogLevel = config.LogLevel(logLevel)
	}
	if flags.Changed("source") {
		cfg.Catalog.Source = config.Source(catalogSource)
	}
	if flags.Changed("file") {
		cfg.Catalog.File = catalogFile
	}
	if flags.Changed("postgres-dsn") {
		cfg.Catalog.PostgresDSN = postgresDSN
	}
	if flags.Changed("redis") {
		cfg.Redis.Endpoint = redisEndpoint
	}
	if flags.Changed("metrics-addr") {
		cfg.Metrics.Addr = metricsAddr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServer(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadServerConfig(cmd)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	configureLogging(cfg.Server.LogLevel)

	meterProvider, shutdownTelemetry, err := observe.InitProvider(ctx, observe.ProviderConfig{ServiceName: "spellbook"})
	if err != nil {
		return fmt.Errorf("failed to initialise telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			slog.Warn("Telemetry shutdown failed", "error", err)
		}
	}()

	metrics, err := observe.NewMetrics(meterProvider)
	if err != nil {
		return fmt.Errorf("failed to create metrics: %w", err)
	}

	source, closeSource, err := openSource(ctx, cfg.Catalog)
	if err != nil {
		return fmt.Errorf("failed to open %s catalog source: %w", cfg.Catalog.Source, err)
	}
	defer closeSource()

	var snapshot spells.Snapshot
	if cfg.Redis.Endpoint != "" {
		redisClient, err := redis.NewClient(cfg.Redis.Endpoint, &redis.Options{
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return fmt.Errorf("failed to create redis client: %w", err)
		}
		defer func() { _ = redisClient.Close() }()

		snapshot, err = spells.NewRedisSnapshot(&spells.RedisConfig{
			Client: redisClient,
			TTL:    cfg.Redis.SnapshotTTL,
		})
		if err != nil {
			return fmt.Errorf("failed to create snapshot cache: %w", err)
		}
		log.Printf("Catalog snapshots cached in redis at %s", cfg.Redis.Endpoint)
	}

	loader, err := catalogloader.New(&catalogloader.Config{
		Source:      source,
		SourceName:  string(cfg.Catalog.Source),
		Snapshot:    snapshot,
		Clock:       clock.New(),
		IDGenerator: idgen.NewUUID("catalog"),
	})
	if err != nil {
		return fmt.Errorf("failed to create catalog loader: %w", err)
	}

	spellService, err := spellbook.NewOrchestrator(&spellbook.Config{
		Loader:  loader,
		Metrics: metrics,
	})
	if err != nil {
		return fmt.Errorf("failed to create spellbook service: %w", err)
	}

	loaded, err := spellService.Reload(ctx, &spellbook.ReloadInput{})
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Printf("Catalog %s loaded from %s with %d spells (snapshot: %t)",
		loaded.Version, cfg.Catalog.Source, loaded.Total, loaded.FromSnapshot)

	spellHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		SpellService: spellService,
	})
	if err != nil {
		return fmt.Errorf("failed to create spell handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	logger := interceptorLogger(slog.Default())
	recoveryOpt := grpc_recovery.WithRecoveryHandler(recoverPanic)
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logger),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logger),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	v1alpha1.RegisterSpellServiceServer(srv, spellHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsServer = &http.Server{
			Addr:              cfg.Metrics.Addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	hangup := make(chan os.Signal, 1)
	signal.Notify(hangup, syscall.SIGHUP)
	defer signal.Stop(hangup)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("gRPC server starting on port %d...", cfg.Server.Port)
		if err := srv.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	if metricsServer != nil {
		g.Go(func() error {
			log.Printf("Metrics server starting on %s...", metricsServer.Addr)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server failed: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-hangup:
				reloaded, err := spellService.Reload(gctx, &spellbook.ReloadInput{SkipSnapshot: true})
				if err != nil {
					slog.Error("Catalog reload on SIGHUP failed", "error", err)
					continue
				}
				log.Printf("Catalog %s reloaded with %d spells", reloaded.Version, reloaded.Total)
			}
		}
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down gRPC server...")
		healthServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if metricsServer != nil {
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				slog.Warn("Metrics server shutdown failed", "error", err)
			}
		}

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			log.Println("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			log.Println("Server stopped gracefully")
		}
		return nil
	})

	return g.Wait()
}

// interceptorLogger adapts slog to the go-grpc-middleware logging interface.
// The middleware levels share slog's numeric values.
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

func recoverPanic(p any) error {
	slog.Error("Recovered from panic in gRPC handler", "panic", p)
	return status.Error(codes.Internal, "internal error")
}
