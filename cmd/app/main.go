package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"packnow/cmd"
	httpadapter "packnow/internal/adapters/in/http"
	"packnow/internal/adapters/out/postgres/orderrepo"
	"packnow/internal/adapters/out/postgres/packerrepo"
	"packnow/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := connectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateAssignPackerCommandHandler(),
		app.CreateGetLowStockPackersQueryHandler(),
		app.LowStockThreshold(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:   envVariable("HTTP_PORT", "8080"),
		DBHost:     envVariable("DB_HOST", "localhost"),
		DBPort:     envVariable("DB_PORT", "5432"),
		DBUser:     envVariable("DB_USER", "postgres"),
		DBPassword: envVariable("DB_PASSWORD", "postgres"),
		DBName:     envVariable("DB_NAME", "packnow"),
		DBSslMode:  envVariable("DB_SSLMODE", "disable"),

		BasePackingFee:    envFloatVariable("BASE_PACKING_FEE", 50),
		PricePerKm:        envFloatVariable("PRICE_PER_KM", 10),
		UrgentMultiplier:  envFloatVariable("URGENT_MULTIPLIER", 1.5),
		SearchRadiusKm:    envFloatVariable("SEARCH_RADIUS_KM", 10),
		LowStockThreshold: envIntVariable("LOW_INVENTORY_THRESHOLD", 10),
	}
}

func envVariable(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envFloatVariable(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return parsed
}

func envIntVariable(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return parsed
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &packerrepo.PackerDTO{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateCreatePackerCommandHandler(),
		app.CreateRestockPackerCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetUnassignedOrdersQueryHandler(),
		app.CreateGetAllPackersQueryHandler(),
		app.CreateGetLowStockPackersQueryHandler(),
		app.MaterialEstimator(),
		app.PricingEngine(),
		app.LowStockThreshold(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
