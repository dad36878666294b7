package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
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
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-event-planner/docs"
	"github.com/sbilibin2017/gw-event-planner/internal/facades"
	"github.com/sbilibin2017/gw-event-planner/internal/handlers"
	"github.com/sbilibin2017/gw-event-planner/internal/health"
	"github.com/sbilibin2017/gw-event-planner/internal/jwt"
	"github.com/sbilibin2017/gw-event-planner/internal/logger"
	"github.com/sbilibin2017/gw-event-planner/internal/middlewares"
	"github.com/sbilibin2017/gw-event-planner/internal/repositories"
	"github.com/sbilibin2017/gw-event-planner/internal/services"
	"github.com/sbilibin2017/gw-event-planner/internal/store"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds every setting read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	DBDriver   string
	SQLitePath string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExpSecond    int

	KafkaBrokers []string
	KafkaTopic   string

	EventfindaBaseURL       string
	EventfindaUsername      string
	EventfindaPassword      string
	EventfindaLocationQuery string

	GRPCHealthPort string

	JWTSecretKey string
	JWTExpSecond int
	CookieSecure bool
}

// @title gw-event-planner API
// @version 1.0.0
// @description Event planning backend: saved events, favourites, RSVPs, planning and an Eventfinda proxy
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name token
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
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, Kafka, Eventfinda, health and JWT configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		n, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return n, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// Store config
	cfg.DBDriver = getEnv("DB_DRIVER", store.DriverPostgres)
	cfg.SQLitePath = getEnv("SQLITE_PATH", "planner.db")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.RedisExpSecond, err = getInt("REDIS_EXP_SECOND", "3600"); err != nil {
		return
	}

	// Kafka config, an empty broker list disables the activity stream
	cfg.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "planner-activity")

	// Eventfinda config
	cfg.EventfindaBaseURL = getEnv("EVENTFINDA_BASE_URL", facades.DefaultEventfindaBaseURL)
	cfg.EventfindaUsername = getEnv("EVENTFINDA_USERNAME", "")
	cfg.EventfindaPassword = getEnv("EVENTFINDA_PASSWORD", "")
	cfg.EventfindaLocationQuery = getEnv("EVENTFINDA_LOCATION_QUERY", services.DefaultLocationQuery)

	// Health config
	cfg.GRPCHealthPort = getEnv("GRPC_HEALTH_PORT", "50051")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", jwt.DefaultSecretKey)
	if cfg.JWTExpSecond, err = getInt("JWT_EXP_SECOND", strconv.Itoa(int(jwt.DefaultExpiration/time.Second))); err != nil {
		return
	}
	if cfg.CookieSecure, err = strconv.ParseBool(getEnv("COOKIE_SECURE", "false")); err != nil {
		err = fmt.Errorf("COOKIE_SECURE: %w", err)
		return
	}

	return
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// storeConfig selects the DSN for the configured driver.
func storeConfig(cfg config) (store.Config, error) {
	sc := store.Config{
		Driver:       cfg.DBDriver,
		MaxOpenConns: cfg.PGMaxOpenConns,
		MaxIdleConns: cfg.PGMaxIdleConns,
	}
	switch cfg.DBDriver {
	case store.DriverPostgres:
		sc.DSN = store.PostgresDSN(cfg.PGHost, cfg.PGPort, cfg.PGUser, cfg.PGPassword, cfg.PGDB)
	case store.DriverSQLite:
		sc.DSN = store.SQLiteDSN(cfg.SQLitePath)
	default:
		return sc, fmt.Errorf("%w: %q", store.ErrUnsupportedDriver, cfg.DBDriver)
	}
	return sc, nil
}

// run initializes the logger, store, Redis, Kafka, HTTP and health servers.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, logger.EncodingJSON); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Open the store and apply migrations
	sc, err := storeConfig(cfg)
	if err != nil {
		return err
	}
	logger.Log.Infof("Opening %s store", sc.Driver)
	db, err := store.Open(ctx, sc)
	if err != nil {
		logger.Log.Errorw("store open failed", "driver", sc.Driver, "error", err)
		return err
	}
	defer db.Close()

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka writer for the activity stream
	var activityWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer kw.Close()
		activityWriter = kw
		logger.Log.Infof("Publishing activities to %s on %v", cfg.KafkaTopic, cfg.KafkaBrokers)
	}

	// Initialize JWT service
	jwtSvc := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	savedWriteRepo := repositories.NewSavedEventWriteRepository(db, txGetter)
	savedReadRepo := repositories.NewSavedEventReadRepository(db)
	userEventWriteRepo := repositories.NewUserEventWriteRepository(db, txGetter)
	userEventReadRepo := repositories.NewUserEventReadRepository(db)
	rsvpWriteRepo := repositories.NewEventParticipantWriteRepository(db, txGetter)
	rsvpReadRepo := repositories.NewEventParticipantReadRepository(db)
	eventRepo := repositories.NewEventRepository(db, txGetter)
	logisticRepo := repositories.NewLogisticRepository(db, txGetter)
	agendaRepo := repositories.NewAgendaRepository(db, txGetter)
	expenseRepo := repositories.NewExpenseRepository(db, txGetter)
	participantRepo := repositories.NewParticipantRepository(db, txGetter)
	cacheRepo := repositories.NewEventfindaCacheRepository(rdb, time.Duration(cfg.RedisExpSecond)*time.Second)

	// Initialize facades
	eventfinda := facades.NewEventfindaHTTPFacade(
		&http.Client{Timeout: 15 * time.Second},
		cfg.EventfindaBaseURL, cfg.EventfindaUsername, cfg.EventfindaPassword,
	)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc)
	savedEventService := services.NewSavedEventService(savedWriteRepo, savedReadRepo, userEventWriteRepo, userEventReadRepo, activityWriter)
	rsvpService := services.NewRSVPService(rsvpWriteRepo, rsvpReadRepo, activityWriter)
	eventService := services.NewEventService(eventRepo)
	planningService := services.NewPlanningService(logisticRepo, agendaRepo, expenseRepo)
	participantService := services.NewParticipantService(participantRepo)
	eventfindaService := services.NewEventfindaService(eventfinda, cacheRepo, cfg.EventfindaLocationQuery)

	// Setup router
	cookies := handlers.SessionCookies{
		MaxAge: time.Duration(cfg.JWTExpSecond) * time.Second,
		Secure: cfg.CookieSecure,
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/register", handlers.NewRegisterHandler(authService, cookies))
	r.Post("/login", handlers.NewLoginHandler(authService, cookies))
	r.Post("/logout", handlers.NewLogoutHandler(cookies))
	r.Get("/me", handlers.NewMeHandler(authService, jwtSvc))
	r.Get("/eventfinda/melbourne", handlers.NewEventfindaEventsHandler(eventfindaService))
	r.Get("/eventfinda/categories", handlers.NewEventfindaCategoriesHandler(eventfindaService))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwtSvc))

		r.Get("/saved-events", handlers.NewListSavedEventsHandler(savedEventService))
		r.Post("/saved-events", handlers.NewSaveEventHandler(savedEventService))
		r.Delete("/saved-events", handlers.NewUnsaveEventHandler(savedEventService))

		r.Get("/user-event", handlers.NewListUserEventsHandler(savedEventService))
		r.Post("/user-event", handlers.NewLinkUserEventHandler(savedEventService))
		r.Patch("/user-event", handlers.NewUpdateUserEventHandler(savedEventService))
		r.Delete("/user-event", handlers.NewUnlinkUserEventHandler(savedEventService))

		r.Get("/event-participant", handlers.NewListRSVPHandler(rsvpService))
		r.Post("/event-participant", handlers.NewCreateRSVPHandler(rsvpService))
		r.Put("/event-participant/rsvp", handlers.NewUpdateRSVPHandler(rsvpService))
		r.Put("/participant_rsvp", handlers.NewUpdateRSVPHandler(rsvpService))
		r.Delete("/event-participant", handlers.NewRemoveRSVPHandler(rsvpService))

		r.Get("/events", handlers.NewListEventsHandler(eventService))
		r.Get("/events/all", handlers.NewListAllEventsHandler(eventService))
		r.Post("/events", handlers.NewCreateEventHandler(eventService))
		r.Get("/events/{event_id}", handlers.NewGetEventHandler(eventService))
		r.Put("/events/{event_id}", handlers.NewUpdateEventHandler(eventService))
		r.Delete("/events/{event_id}", handlers.NewDeleteEventHandler(eventService))

		r.Get("/logistics", handlers.NewListLogisticsHandler(planningService))
		r.Post("/logistics", handlers.NewCreateLogisticHandler(planningService))
		r.Put("/logistics", handlers.NewUpdateLogisticHandler(planningService))
		r.Put("/logistics/{id}", handlers.NewUpdateLogisticHandler(planningService))
		r.Delete("/logistics", handlers.NewDeleteLogisticHandler(planningService))

		r.Get("/agenda", handlers.NewListAgendaHandler(planningService))
		r.Post("/agenda", handlers.NewCreateAgendaHandler(planningService))
		r.Put("/agenda", handlers.NewUpdateAgendaHandler(planningService))
		r.Delete("/agenda", handlers.NewDeleteAgendaHandler(planningService))

		r.Get("/expense", handlers.NewListExpensesHandler(planningService))
		r.With(middlewares.TxMiddleware(db)).Post("/expense", handlers.NewCreateExpenseHandler(planningService))
		r.Put("/expense", handlers.NewUpdateExpenseHandler(planningService))
		r.Delete("/expense", handlers.NewDeleteExpenseHandler(planningService))

		r.Get("/participant", handlers.NewSearchParticipantsHandler(participantService))
		r.Post("/participant", handlers.NewCreateParticipantHandler(participantService))
		r.Get("/participant/{participant_id}", handlers.NewGetParticipantHandler(participantService))
		r.Put("/participant/{participant_id}", handlers.NewUpdateParticipantHandler(participantService))
		r.Delete("/participant/{participant_id}", handlers.NewDeleteParticipantHandler(participantService))
		r.Get("/participant_category", handlers.NewListParticipantCategoriesHandler(participantService))
	})

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// gRPC health server
	healthLis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.AppHost, cfg.GRPCHealthPort))
	if err != nil {
		return fmt.Errorf("health listener: %w", err)
	}
	healthSrv := health.New(db)
	healthDone := make(chan struct{})
	go func() {
		defer close(healthDone)
		if err := healthSrv.Serve(ctxShutdown, healthLis); err != nil {
			errChan <- fmt.Errorf("gRPC health server failed: %w", err)
		}
	}()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr := <-errChan:
		stop()
		srv.Close()
		<-healthDone
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}
	<-healthDone

	logger.Log.Info("Servers stopped gracefully")
	return nil
}
