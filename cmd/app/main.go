package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"ridetrack/cmd"
	adapterhttp "ridetrack/internal/adapters/in/http"
	"ridetrack/internal/adapters/out/postgres/orderrepo"
	"ridetrack/internal/adapters/out/postgres/trackingrepo"
	"ridetrack/internal/adapters/out/postgres/userrepo"
	"ridetrack/internal/jobs"
	"ridetrack/internal/pkg/auth"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := mustConnectDB(configs)
	tokens := mustCreateTokenService(configs)

	app := cmd.NewCompositionRoot(configs, db, tokens)

	jobManager := jobs.NewJobManager(
		app.CreateActivateScheduledOrdersCommandHandler(),
		slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:     goDotEnvVariable("JWT_SECRET"),
		JWTTTLMinutes: goDotEnvVariable("JWT_TTL_MINUTES"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	// TranslateError turns unique-key violations into gorm.ErrDuplicatedKey,
	// which the repositories classify as retryable duplicate identifiers.
	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = db.AutoMigrate(
		&userrepo.UserDTO{},
		&orderrepo.OrderDTO{},
		&trackingrepo.TrackingDTO{},
		&trackingrepo.HistoryEventDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return db
}

func mustCreateTokenService(configs cmd.Config) *auth.TokenService {
	ttlMinutes, err := strconv.Atoi(configs.JWTTTLMinutes)
	if err != nil {
		log.Fatalf("Error parsing JWT_TTL_MINUTES: %v", err)
	}

	tokens, err := auth.NewTokenService(configs.JWTSecret, time.Duration(ttlMinutes)*time.Minute)
	if err != nil {
		log.Fatalf("Error creating token service: %v", err)
	}

	return tokens
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := adapterhttp.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateCreateTrackingCommandHandler(),
		app.CreateUpdateTrackingCommandHandler(),
		app.CreateAddTrackingHistoryCommandHandler(),
		app.CreateRegisterUserCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateGetTrackingQueryHandler(),
		app.CreateListTrackingHistoryQueryHandler(),
		app.CreateGetUserQueryHandler(),
		app.CreateListUsersQueryHandler(),
		app.CreateLoginQueryHandler(),
		app.TokenService(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
