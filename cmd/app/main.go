package main

import (
	"fmt"
	"net/http"
	"os"

	"dealersales/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := newLogger()
	configs := getConfigs(logger)

	if lvl, err := zerolog.ParseLevel(configs.LogLevel); err == nil && configs.LogLevel != "" {
		logger = logger.Level(lvl)
	}

	db, err := gorm.Open(gorm_postgres.Open(postgresDSN(configs)), &gorm.Config{})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	root := cmd.NewCompositionRoot(configs, db, logger)

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		logger.Fatal().Err(err).Msg("failed to start background jobs")
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort, logger)
}

func newLogger() zerolog.Logger {
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func getConfigs(logger zerolog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Fatal().Err(err).Msg("error loading .env file")
	}

	return cmd.Config{
		HTTPPort:   os.Getenv("HTTP_PORT"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  os.Getenv("DB_SSLMODE"),
		LogLevel:   os.Getenv("LOG_LEVEL"),
	}
}

func postgresDSN(configs cmd.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)
}

func startWebServer(root *cmd.CompositionRoot, port string, logger zerolog.Logger) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	root.CreateHTTPServer().RegisterRoutes(e)

	if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil {
		logger.Fatal().Err(err).Msg("web server stopped")
	}
}
