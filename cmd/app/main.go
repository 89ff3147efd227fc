package main

import (
	"fmt"
	"log/slog"
	"os"

	"fleetadmin/cmd"
	httpadapter "fleetadmin/internal/adapters/in/http"
	"fleetadmin/internal/adapters/out/postgres/assignmentrepo"
	"fleetadmin/internal/adapters/out/postgres/contractrepo"
	"fleetadmin/internal/adapters/out/postgres/driverrepo"
	"fleetadmin/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := openDatabase(configs)
	migrateDatabase(db)

	app := cmd.NewCompositionRoot(configs, db, logger)

	jobManager := app.CreateJobManager(jobs.Schedules{
		Activation: configs.ActivationSchedule,
		Overdue:    configs.OverdueSchedule,
		Summary:    configs.SummarySchedule,
	})
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		ActivationSchedule: goDotEnvVariable("CRON_ACTIVATION"),
		OverdueSchedule:    goDotEnvVariable("CRON_OVERDUE"),
		SummarySchedule:    goDotEnvVariable("CRON_SUMMARY"),
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

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func migrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(
		&contractrepo.ContractDTO{}, &contractrepo.RentalVehicleDTO{},
		&driverrepo.DriverDTO{}, &assignmentrepo.AssignmentDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := db.Exec(assignmentrepo.OverlapGuardDDL).Error; err != nil {
		log.Fatalf("Failed to create assignment overlap guard: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(
		app.CreateCreateContractCommandHandler(),
		app.CreateTransitionContractCommandHandler(),
		app.CreateAssignDriverCommandHandler(),
		app.CreateUnassignDriverCommandHandler(),
		app.CreateRegisterDriverCommandHandler(),
		app.CreateSuspendDriverCommandHandler(),
		app.CreateResumeDriverCommandHandler(),
		app.CreateGetStatusSummaryQueryHandler(),
		app.CreateGetActiveAssignmentsQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
