package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"canteen/cmd"
	canteenhttp "canteen/internal/adapters/in/http"
	"canteen/internal/adapters/out/postgres/menurepo"
	"canteen/internal/adapters/out/postgres/orderrepo"
	"canteen/internal/adapters/out/postgres/studentrepo"
	"canteen/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateGetQueueStatusQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs)
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
		AdminUsername: goDotEnvVariable("ADMIN_USERNAME"),
		AdminPassword: goDotEnvVariable("ADMIN_PASSWORD"),
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
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError turns driver duplicate-key failures into
	// gorm.ErrDuplicatedKey, which the student repository depends on.
	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&studentrepo.StudentDTO{},
		&menurepo.ItemDTO{},
		&orderrepo.OrderDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := canteenhttp.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateGetMenuQueryHandler(),
		app.CreateGetQueueStatusQueryHandler(),
		app.CreateGetKitchenQueueQueryHandler(),
		app.CreateGetDailySummaryQueryHandler(),
		canteenhttp.NewSessionStore(),
		canteenhttp.Credentials{
			Username: configs.AdminUsername,
			Password: configs.AdminPassword,
		},
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
