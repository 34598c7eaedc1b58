package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/gw-currency-rates/docs"
	"github.com/sbilibin2017/gw-currency-rates/internal/facades"
	"github.com/sbilibin2017/gw-currency-rates/internal/handlers"
	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/middlewares"
	"github.com/sbilibin2017/gw-currency-rates/internal/repositories"
	"github.com/sbilibin2017/gw-currency-rates/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	_ "modernc.org/sqlite"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Store drivers for the durable favorites store.
const (
	storeMemory   = "memory"
	storeSQLite   = "sqlite"
	storePostgres = "postgres"
)

// Latest-rate sources.
const (
	sourceHTTP = "http"
	sourceGRPC = "grpc"
)

type config struct {
	appHost  string
	appPort  string
	logLevel string

	ratesAPIURL       string
	ratesAPITimeout   time.Duration
	rateSource        string
	gwHost            string
	gwPort            string
	descriptionAPIURL string

	alertInterval time.Duration

	storeDriver    string
	sqlitePath     string
	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int
	redisSessionTTL   time.Duration

	kafkaBrokers    []string
	kafkaAlertTopic string
}

// @title gw-currency-rates API
// @version 1.0.0
// @description Currency converter, historical rate charts and threshold alerts on top of a public exchange-rate service
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, rate source, store, Redis, Kafka and logging configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}
	getSeconds := func(key, defaultValue string) (time.Duration, error) {
		v, err := getInt(key, defaultValue)
		if err != nil {
			return 0, err
		}
		if v <= 0 {
			return 0, fmt.Errorf("%s: must be positive, got %d", key, v)
		}
		return time.Duration(v) * time.Second, nil
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Rate source config
	cfg.ratesAPIURL = getEnv("RATES_API_URL", facades.DefaultRatesAPIURL)
	if cfg.ratesAPITimeout, err = getSeconds("RATES_API_TIMEOUT_SECOND", "10"); err != nil {
		return
	}
	cfg.rateSource = strings.ToLower(getEnv("RATE_SOURCE", sourceHTTP))
	if cfg.rateSource != sourceHTTP && cfg.rateSource != sourceGRPC {
		err = fmt.Errorf("RATE_SOURCE: unknown source %q", cfg.rateSource)
		return
	}
	cfg.gwHost = getEnv("GW_EXCHANGER_HOST", "localhost")
	cfg.gwPort = getEnv("GW_EXCHANGER_PORT", "50051")
	cfg.descriptionAPIURL = getEnv("DESCRIPTION_API_URL", facades.DefaultDescriptionAPIURL)

	// Alert config
	if cfg.alertInterval, err = getSeconds("ALERT_INTERVAL_SECOND", "30"); err != nil {
		return
	}

	// Store config
	cfg.storeDriver = strings.ToLower(getEnv("STORE_DRIVER", storeSQLite))
	switch cfg.storeDriver {
	case storeMemory, storeSQLite, storePostgres:
	default:
		err = fmt.Errorf("STORE_DRIVER: unknown driver %q", cfg.storeDriver)
		return
	}
	cfg.sqlitePath = getEnv("SQLITE_PATH", "gw-currency-rates.db")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	if cfg.pgPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config; an empty host keeps the session store in memory
	cfg.redisHost = getEnv("REDIS_HOST", "")
	if cfg.redisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.redisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.redisSessionTTL, err = getSeconds("REDIS_SESSION_TTL_SECOND", "86400"); err != nil {
		return
	}

	// Kafka config; no brokers disables the Kafka alert sink
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.kafkaBrokers = append(cfg.kafkaBrokers, b)
			}
		}
	}
	cfg.kafkaAlertTopic = getEnv("KAFKA_ALERT_TOPIC", "currency-alerts")

	return
}

// run initializes the logger, stores, rate sources, alert pipeline and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Durable store for favorites
	durable, closeDurable, err := openDurableStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeDurable()

	// Session store for currency colors
	var session services.KeyValueStore = repositories.NewMemoryKeyValueRepository()
	if cfg.redisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         net.JoinHostPort(cfg.redisHost, strconv.Itoa(cfg.redisPort)),
			Password:     cfg.redisPassword,
			DB:           cfg.redisDB,
			PoolSize:     cfg.redisPoolSize,
			MinIdleConns: cfg.redisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		session = repositories.NewRedisKeyValueRepository(rdb, "gw-currency-rates", cfg.redisSessionTTL)
		logger.Log.Infow("Session store ready", "driver", "redis", "ttl", cfg.redisSessionTTL)
	}

	// Rate sources. History always comes from the HTTP service.
	httpRates := facades.NewRatesHTTPFacade(cfg.ratesAPIURL, cfg.ratesAPITimeout)
	var latest interface {
		services.LatestRateReader
		handlers.CurrencyLister
	} = httpRates
	if cfg.rateSource == sourceGRPC {
		grpcAddr := net.JoinHostPort(cfg.gwHost, cfg.gwPort)
		conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("failed to connect to gRPC service at %s: %w", grpcAddr, err)
		}
		defer conn.Close()
		latest = facades.NewExchangeRatesGRPCFacade(pb.NewExchangeServiceClient(conn))
	}
	logger.Log.Infow("Rate source ready", "source", cfg.rateSource, "history", cfg.ratesAPIURL)

	descriptions := facades.NewDescriptionFacade(cfg.descriptionAPIURL, cfg.ratesAPITimeout)

	// Alert sinks
	hub := handlers.NewAlertHub()
	go hub.Run(ctx)

	sinks := []services.AlertSink{hub}
	if len(cfg.kafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.kafkaBrokers...),
			Topic:                  cfg.kafkaAlertTopic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		}
		kafkaSink := services.NewKafkaAlertSink(writer)
		defer kafkaSink.Close()
		sinks = append(sinks, kafkaSink)
		logger.Log.Infow("Kafka alert sink ready", "brokers", cfg.kafkaBrokers, "topic", cfg.kafkaAlertTopic)
	}

	// Initialize services
	converter := services.NewConverterService(latest)
	colors := services.NewColorService(session, rand.New(rand.NewSource(time.Now().UnixNano())))
	series := services.NewSeriesService(httpRates, colors)
	favorites := services.NewFavoritesService(durable)
	monitor := services.NewAlertMonitor(latest,
		services.WithInterval(cfg.alertInterval),
		services.WithSinks(sinks...),
	)
	defer monitor.Close()

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/currencies", handlers.NewListCurrenciesHandler(latest))
		r.Get("/currencies/options", handlers.NewCurrencyOptionsHandler(latest, favorites))
		r.Get("/currencies/{code}/description", handlers.NewCurrencyDescriptionHandler(descriptions))

		r.Get("/favorites", handlers.NewListFavoritesHandler(favorites))
		r.Post("/favorites/{code}", handlers.NewToggleFavoriteHandler(favorites))

		r.Post("/conversions", handlers.NewConvertHandler(converter))
		r.Get("/conversions", handlers.NewGetConversionsHandler(converter))
		r.Delete("/conversions", handlers.NewClearConversionsHandler(converter))
		r.Post("/conversions/swap", handlers.NewSwapHandler())

		r.Get("/series", handlers.NewSeriesHandler(series))

		r.Put("/alert", handlers.NewConfigureAlertHandler(monitor))
		r.Get("/alert", handlers.NewAlertStatusHandler(monitor))
		r.Post("/alert/ack", handlers.NewAcknowledgeAlertHandler(monitor))
		r.Get("/alerts/ws", handlers.NewAlertStreamHandler(hub))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", net.JoinHostPort(cfg.appHost, cfg.appPort))),
	))

	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// openDurableStore opens and migrates the favorites store selected by cfg.storeDriver.
func openDurableStore(ctx context.Context, cfg config) (services.KeyValueStore, func(), error) {
	var (
		db  *sqlx.DB
		err error
	)
	switch cfg.storeDriver {
	case storeMemory:
		logger.Log.Infow("Durable store ready", "driver", storeMemory)
		return repositories.NewMemoryKeyValueRepository(), func() {}, nil

	case storeSQLite:
		db, err = sqlx.ConnectContext(ctx, "sqlite", cfg.sqlitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		db.SetMaxOpenConns(1)

	case storePostgres:
		dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
			cfg.pgUser, cfg.pgPassword, net.JoinHostPort(cfg.pgHost, strconv.Itoa(cfg.pgPort)), cfg.pgDB)
		logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.pgHost, "port", cfg.pgPort, "db", cfg.pgDB)
		db, err = sqlx.ConnectContext(ctx, "pgx", dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres connection error: %w", err)
		}
		db.SetMaxOpenConns(cfg.pgMaxOpenConns)
		db.SetMaxIdleConns(cfg.pgMaxIdleConns)

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.storeDriver)
	}

	store := repositories.NewSQLKeyValueRepository(db)
	if err := store.Migrate(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	logger.Log.Infow("Durable store ready", "driver", cfg.storeDriver)
	return store, func() { db.Close() }, nil
}
