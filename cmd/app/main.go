package main

import (
	"fmt"
	"os"

	"vehicletrack/cmd"
	httpadapter "vehicletrack/internal/adapters/in/http"
	"vehicletrack/internal/adapters/out/postgres/inventoryrepo"
	"vehicletrack/internal/adapters/out/postgres/orderrepo"
	"vehicletrack/internal/adapters/out/postgres/productionrepo"
	"vehicletrack/internal/adapters/out/postgres/vehiclerepo"
	"vehicletrack/internal/adapters/out/rabbitmq"
	"vehicletrack/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)
	mustMigrateDatabase(gormDB)

	publisher, err := rabbitmq.NewPublisher(configs.RabbitMQURL)
	if err != nil {
		log.Fatalf("Error connecting to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	app := cmd.NewCompositionRoot(configs, gormDB, publisher)

	jobManager := jobs.NewJobManager(app.CreateGetInventoryItemsQueryHandler(), app.Logger())
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:    goDotEnvVariable("HTTP_PORT"),
		DBHost:      goDotEnvVariable("DB_HOST"),
		DBPort:      goDotEnvVariable("DB_PORT"),
		DBUser:      goDotEnvVariable("DB_USER"),
		DBPassword:  goDotEnvVariable("DB_PASSWORD"),
		DBName:      goDotEnvVariable("DB_NAME"),
		DBSslMode:   goDotEnvVariable("DB_SSLMODE"),
		RabbitMQURL: goDotEnvVariable("RABBITMQ_URL"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&vehiclerepo.VehicleDTO{},
		&productionrepo.ProductionOrderDTO{},
		&orderrepo.PurchaseOrderDTO{},
		&inventoryrepo.InventoryItemDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(httpadapter.ServerDeps{
		CreateVehicleHandler:       app.CreateCreateVehicleCommandHandler(),
		UpdateVehicleHandler:       app.CreateUpdateVehicleCommandHandler(),
		ChangeVehicleStatusHandler: app.CreateChangeVehicleStatusCommandHandler(),
		DeleteVehicleHandler:       app.CreateDeleteVehicleCommandHandler(),
		GetVehiclesHandler:         app.CreateGetVehiclesQueryHandler(),

		CreateProductionOrderHandler:  app.CreateCreateProductionOrderCommandHandler(),
		UpdateProductionOrderHandler:  app.CreateUpdateProductionOrderCommandHandler(),
		AdvanceProductionStageHandler: app.CreateAdvanceProductionStageCommandHandler(),
		DeleteProductionOrderHandler:  app.CreateDeleteProductionOrderCommandHandler(),
		GetProductionOrdersHandler:    app.CreateGetProductionOrdersQueryHandler(),

		CreatePurchaseOrderHandler:       app.CreateCreatePurchaseOrderCommandHandler(),
		UpdatePurchaseOrderHandler:       app.CreateUpdatePurchaseOrderCommandHandler(),
		ChangePurchaseOrderStatusHandler: app.CreateChangePurchaseOrderStatusCommandHandler(),
		DeletePurchaseOrderHandler:       app.CreateDeletePurchaseOrderCommandHandler(),
		GetPurchaseOrdersHandler:         app.CreateGetPurchaseOrdersQueryHandler(),

		CreateInventoryItemHandler:  app.CreateCreateInventoryItemCommandHandler(),
		UpdateInventoryItemHandler:  app.CreateUpdateInventoryItemCommandHandler(),
		AdjustInventoryStockHandler: app.CreateAdjustInventoryStockCommandHandler(),
		DeleteInventoryItemHandler:  app.CreateDeleteInventoryItemCommandHandler(),
		GetInventoryItemsHandler:    app.CreateGetInventoryItemsQueryHandler(),

		UoWFactory: app.UnitOfWorkFactory(),
	})

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
