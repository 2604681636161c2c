package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"

	"github.com/mmartinpaz/hogares/internal/database"
	"github.com/mmartinpaz/hogares/internal/handlers"
	"github.com/mmartinpaz/hogares/internal/identity"
	"github.com/mmartinpaz/hogares/internal/logger"
	"github.com/mmartinpaz/hogares/internal/middlewares"
	"github.com/mmartinpaz/hogares/internal/repositories"
	"github.com/mmartinpaz/hogares/internal/services"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title hogares tasks API
// @version 1.0.0
// @description Microservice for household tasks and assignments
// @host localhost:8083
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		kafkaAddr, kafkaTopic,
		usersURL, logLevel,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		kafkaAddr, kafkaTopic,
		usersURL, logLevel,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Kafka, identity and logging configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	kafkaAddr, kafkaTopic string,
	usersURL, logLevel string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8083")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "tasks")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Kafka config, empty address disables event publishing
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "hogares.events")

	// Identity config
	usersURL = getEnv("USERS_SERVICE_URL", "http://localhost:8081")

	return
}

// run initializes the logger, database, Kafka writer, identity client and
// HTTP server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	kafkaAddr, kafkaTopic string,
	usersURL, logLevel string,
) error {
	// Initialize logger
	log, err := logger.New(logLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer log.Sync()
	log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL and run migrations
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	log.Infof("Connecting to PostgreSQL: %s", dsn)

	db, err := database.Open(ctx, dsn, "tasks", pgMaxOpenConns, pgMaxIdleConns)
	if err != nil {
		log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()

	// Connect Kafka writer, optional
	var events services.EventWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		events = w
		log.Infof("Kafka events enabled on %s topic %s", kafkaAddr, kafkaTopic)
	}

	// Identity client against the users service
	identityClient := identity.NewClient(usersURL)

	// Initialize repositories
	taskReadRepo := repositories.NewTaskReadRepository(db)
	taskWriteRepo := repositories.NewTaskWriteRepository(db, middlewares.GetTxFromContext)
	assignmentReadRepo := repositories.NewAssignmentReadRepository(db)
	assignmentWriteRepo := repositories.NewAssignmentWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	taskService := services.NewTaskService(
		taskReadRepo, taskWriteRepo,
		assignmentReadRepo, assignmentWriteRepo,
		events,
	)

	// Initialize handlers
	createTaskHandler := handlers.NewCreateTaskHandler(taskService)
	listTasksHandler := handlers.NewListTasksHandler(taskService)
	getTaskHandler := handlers.NewGetTaskHandler(taskService)
	completeTaskHandler := handlers.NewCompleteTaskHandler(taskService)
	assignTaskHandler := handlers.NewAssignTaskHandler(taskService)
	listAssignmentsHandler := handlers.NewListAssignmentsHandler(taskService)
	deleteAssignmentHandler := handlers.NewDeleteAssignmentHandler(taskService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	// Read routes
	r.Get("/tasks", listTasksHandler)
	r.Get("/tasks/{taskID}", getTaskHandler)
	r.Get("/tasks/{taskID}/assignments", listAssignmentsHandler)

	// Write routes require a resolved caller and run inside a request
	// transaction
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(identityClient))
		r.Use(middlewares.TxMiddleware(db))
		r.Post("/tasks", createTaskHandler)
		r.Put("/tasks/{taskID}/complete", completeTaskHandler)
		r.Post("/tasks/{taskID}/assign", assignTaskHandler)
		r.Delete("/assignments/{assignmentID}", deleteAssignmentHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
