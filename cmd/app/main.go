package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"laundryops/cmd"
	httpin "laundryops/internal/adapters/in/http"
	"laundryops/internal/adapters/out/postgres/manifestrepo"
	"laundryops/internal/adapters/out/postgres/orderrepo"
	"laundryops/internal/generated/servers"
	"laundryops/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	createDbIfNotExists(configs)
	gormDB := mustGormOpen(configs)
	mustAutoMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := startJobs(&app, logger)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func createDbIfNotExists(configs cmd.Config) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBSslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", configs.DBName).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check database existence: %v", err)
	}

	if !exists {
		if _, err = db.Exec(fmt.Sprintf("CREATE DATABASE %s", configs.DBName)); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
	}
}

func mustGormOpen(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError turns driver duplicate-key errors into
	// gorm.ErrDuplicatedKey, which the repositories map to conflicts.
	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	return gormDB
}

func mustAutoMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.OrderEventDTO{},
		&manifestrepo.ManifestDTO{},
		&manifestrepo.ManifestStopDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot, logger *slog.Logger) *jobs.JobManager {
	jobManager := jobs.NewJobManager(
		app.CreateGenerateManifestCommandHandler(),
		app.RouteProvider(),
		app.CreateFlagOverdueOrdersCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Validator = httpin.NewCustomValidator()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateCompleteSectorCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateAssignRecipeCommandHandler(),
		app.CreateAppendEventCommandHandler(),
		app.CreateGenerateManifestCommandHandler(),
		app.CreateMarkStopCommandHandler(),
		app.CreateCompleteManifestCommandHandler(),
		app.CreateGetSectorBoardQueryHandler(),
		app.CreateGetNetworkKPIsQueryHandler(),
		app.CreateGetNetworkAlertsQueryHandler(),
	)
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
