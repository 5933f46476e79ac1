package main

import (
	"fmt"
	stdhttp "net/http"
	"os"
	"strconv"
	"time"

	"amsral/cmd"
	httpadapter "amsral/internal/adapters/in/http"
	natsadapter "amsral/internal/adapters/out/nats"
	"amsral/internal/adapters/out/postgres/customerrepo"
	"amsral/internal/adapters/out/postgres/invoicerepo"
	"amsral/internal/adapters/out/postgres/orderrepo"
	"amsral/internal/adapters/out/postgres/userrepo"
	"amsral/internal/core/ports"
	"amsral/internal/generated/servers"
	"amsral/internal/jobs"

	"log/slog"

	_ "amsral/internal/generated/docs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultUnitPriceCents      = int64(100)
	defaultOrderAgingThreshold = 24 * time.Hour
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	publisher, closePublisher := createPublisher(configs)
	defer closePublisher()

	app := cmd.NewCompositionRoot(configs, gormDB, publisher)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateEscalateStaleOrdersCommandHandler(),
		app.CreateBillDeliveredOrdersCommandHandler(),
		orderAgingThreshold(configs),
		unitPriceCents(configs),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		NatsURL:             goDotEnvVariable("NATS_URL"),
		UnitPriceCents:      goDotEnvVariable("UNIT_PRICE_CENTS"),
		OrderAgingThreshold: goDotEnvVariable("ORDER_AGING_THRESHOLD"),
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
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.RecordDTO{},
		&customerrepo.CustomerDTO{},
		&userrepo.UserDTO{},
		&invoicerepo.InvoiceDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

// createPublisher connects to NATS when a URL is configured and falls back to
// a noop publisher otherwise, so the service runs without a broker.
func createPublisher(configs cmd.Config) (ports.EventPublisher, func()) {
	if configs.NatsURL == "" {
		return natsadapter.NewNoopPublisher(), func() {}
	}

	publisher, err := natsadapter.NewPublisher(configs.NatsURL)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}

	return publisher, func() { _ = publisher.Close() }
}

func unitPriceCents(configs cmd.Config) int64 {
	if configs.UnitPriceCents == "" {
		return defaultUnitPriceCents
	}

	cents, err := strconv.ParseInt(configs.UnitPriceCents, 10, 64)
	if err != nil {
		log.Fatalf("Invalid UNIT_PRICE_CENTS: %v", err)
	}
	return cents
}

func orderAgingThreshold(configs cmd.Config) time.Duration {
	if configs.OrderAgingThreshold == "" {
		return defaultOrderAgingThreshold
	}

	threshold, err := time.ParseDuration(configs.OrderAgingThreshold)
	if err != nil {
		log.Fatalf("Invalid ORDER_AGING_THRESHOLD: %v", err)
	}
	return threshold
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(
		app.CreateCreateCustomerCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateAddOrderRecordCommandHandler(),
		app.CreateAssignRecordProcessingCommandHandler(),
		app.CreateCompleteRecordCommandHandler(),
		app.CreateMarkOrderDeliveredCommandHandler(),
		app.CreateCreateInvoiceCommandHandler(),
		app.CreateCreateUserCommandHandler(),
		app.CreateGetCustomersQueryHandler(),
		app.CreateGetIncompleteOrdersQueryHandler(),
		app.CreateGetOrderRecordsQueryHandler(),
		app.CreateGetDashboardCountsQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(stdhttp.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
