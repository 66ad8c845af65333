package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"fulfillment/cmd"
	_ "fulfillment/docs"
	adapterhttp "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/kafka"
	"fulfillment/internal/adapters/out/postgres/batchrepo"
	"fulfillment/internal/adapters/out/postgres/loadrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/picklistrepo"
	"fulfillment/internal/adapters/out/postgres/sequencerepo"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/jobs"
	"fulfillment/internal/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, closeDB := mustConnectDatabase(configs)
	defer closeDB()

	publisher, closePublisher := createPublisher(configs, logger)
	defer closePublisher()

	app := cmd.NewCompositionRoot(configs, gormDB, publisher)

	jobManager := jobs.NewJobManager(app.CreateCompleteDueRunsCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaPickListTopic:     goDotEnvVariable("KAFKA_PICK_LIST_COMPLETED_TOPIC"),
		KafkaLoadDispatchTopic: goDotEnvVariable("KAFKA_LOAD_DISPATCHED_TOPIC"),
		KafkaLoadRecallTopic:   goDotEnvVariable("KAFKA_LOAD_RECALLED_TOPIC"),
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

// mustConnectDatabase opens the Postgres connection pool through lib/pq,
// hands it to GORM and brings the schema up to date.
func mustConnectDatabase(configs cmd.Config) (*gorm.DB, func()) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err = sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to reach database: %v", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to initialize GORM: %v", err)
	}

	err = gormDB.AutoMigrate(
		&batchrepo.BatchDTO{},
		&orderrepo.OrderDTO{},
		&picklistrepo.PickListDTO{},
		&picklistrepo.PickItemDTO{},
		&picklistrepo.BatchPickDTO{},
		&loadrepo.LoadDTO{},
		&loadrepo.LoadItemDTO{},
		&sequencerepo.SequenceDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB, func() { _ = sqlDB.Close() }
}

// createPublisher wires the Kafka event publisher, or a no-op stand-in when
// no broker is configured so the service stays usable in local setups.
func createPublisher(configs cmd.Config, logger *slog.Logger) (ports.EventPublisher, func()) {
	if configs.KafkaHost == "" {
		return kafka.NewNoopPublisher(logger), func() {}
	}

	topics := kafka.Topics{
		PickListCompleted: configs.KafkaPickListTopic,
		LoadDispatched:    configs.KafkaLoadDispatchTopic,
		LoadRecalled:      configs.KafkaLoadRecallTopic,
	}
	publisher, err := kafka.NewPublisher(strings.Split(configs.KafkaHost, ","), topics, logger)
	if err != nil {
		log.Fatalf("Failed to connect to Kafka: %v", err)
	}
	return publisher, func() { _ = publisher.Close() }
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	registry := prometheus.DefaultRegisterer
	m := metrics.NewMetrics(registry)

	server := adapterhttp.NewServer(adapterhttp.Handlers{
		CreatePickList:      app.CreateCreatePickListCommandHandler(),
		StartPickList:       app.CreateStartPickListCommandHandler(),
		CompletePickList:    app.CreateCompletePickListCommandHandler(),
		RecordPick:          app.CreateRecordPickCommandHandler(),
		MarkItemShort:       app.CreateMarkItemShortCommandHandler(),
		ReplaceItemBatches:  app.CreateReplaceItemBatchesCommandHandler(),
		ConfirmCombinedPick: app.CreateConfirmCombinedPickCommandHandler(),
		CheckInBatches:      app.CreateCheckInBatchesCommandHandler(),
		CreateLoad:          app.CreateCreateLoadCommandHandler(),
		DeleteLoad:          app.CreateDeleteLoadCommandHandler(),
		AddOrderToLoad:      app.CreateAddOrderToLoadCommandHandler(),
		RemoveOrderFromLoad: app.CreateRemoveOrderFromLoadCommandHandler(),
		ResequenceLoad:      app.CreateResequenceLoadCommandHandler(),
		DispatchLoad:        app.CreateDispatchLoadCommandHandler(),
		RecallLoad:          app.CreateRecallLoadCommandHandler(),
		GetPickList:         app.CreateGetPickListQueryHandler(),
		GetCombinedPicking:  app.CreateGetCombinedPickingQueryHandler(),
		GetLoad:             app.CreateGetLoadQueryHandler(),
	}, m)

	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/openapi.json", func(c echo.Context) error {
		swagger, err := servers.GetSwagger()
		if err != nil {
			return c.String(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, swagger)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}
