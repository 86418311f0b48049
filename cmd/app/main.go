package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"beerorders/cmd"
	httpadapter "beerorders/internal/adapters/in/http"
	"beerorders/internal/adapters/out/postgres/beerrepo"
	"beerorders/internal/adapters/out/postgres/customerrepo"
	"beerorders/internal/adapters/out/postgres/orderrepo"
	"beerorders/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()

	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&beerrepo.BeerDTO{},
		&customerrepo.CustomerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app)

	e := newWebServer(&app)
	go func() {
		startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
		if startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			log.Fatalf("Error starting web server: %v", startErr)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	jobManager.StopAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Error shutting down web server: %v", err)
	}
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

func startJobs(app *cmd.CompositionRoot) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(app.CreateDispatchCallbacksCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	return jobManager
}

func newWebServer(app *cmd.CompositionRoot) *echo.Echo {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	srv := httpadapter.NewServer(httpadapter.Handlers{
		CreateBeer:     app.CreateCreateBeerCommandHandler(),
		UpdateBeer:     app.CreateUpdateBeerCommandHandler(),
		DeleteBeer:     app.CreateDeleteBeerCommandHandler(),
		CreateCustomer: app.CreateCreateCustomerCommandHandler(),
		UpdateCustomer: app.CreateUpdateCustomerCommandHandler(),
		DeleteCustomer: app.CreateDeleteCustomerCommandHandler(),
		CreateOrder:    app.CreateCreateOrderCommandHandler(),
		CancelOrder:    app.CreateCancelOrderCommandHandler(),

		GetBeerByID:        app.CreateGetBeerByIDQueryHandler(),
		GetAllBeers:        app.CreateGetAllBeersQueryHandler(),
		GetCustomerByID:    app.CreateGetCustomerByIDQueryHandler(),
		GetAllCustomers:    app.CreateGetAllCustomersQueryHandler(),
		GetCustomerByEmail: app.CreateGetCustomerByEmailQueryHandler(),
		GetOrderByID:       app.CreateGetOrderByIDQueryHandler(),
		GetAllOrders:       app.CreateGetAllOrdersQueryHandler(),
		GetOrdersByCust:    app.CreateGetOrdersByCustomerQueryHandler(),
	})
	srv.RegisterRoutes(e)

	return e
}
