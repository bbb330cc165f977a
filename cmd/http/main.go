package main

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/delivery/http/controllers"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/delivery/http/routers"
	"medibook-service/internal/app/drivers/database"
	"medibook-service/internal/app/drivers/logger"
	smtpmailer "medibook-service/internal/app/drivers/mailer"
	"medibook-service/internal/app/drivers/messaging"
	"medibook-service/internal/app/services/core/appointments"
	"medibook-service/internal/app/services/core/auth"
	"medibook-service/internal/app/services/core/notifications"
	"medibook-service/internal/app/services/core/session"
	"medibook-service/internal/app/services/core/users"
	"medibook-service/internal/app/services/shared/eventbus"
	sharedmailer "medibook-service/internal/app/services/shared/mailer"
	sharedredis "medibook-service/internal/app/services/shared/redis"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig, log)
	redisClient := database.NewRedisClient(driverConfig, log)

	var rabbitMQ *amqp091.Connection
	if driverConfig.RabbitMQ.Enabled {
		rabbitMQ = messaging.NewRabbitMQ(driverConfig, log)
	}

	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	bootstrapTheApp(workerCtx, bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	stopWorker()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(workerCtx context.Context, bootstrap config.Bootstrap) {
	// Shared
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository, bootstrap.InternalConfig.App.SessionExpiryTimeInHours)
	bus := eventbus.NewBus(bootstrap.Logger)

	// Mailer (optional, only when RabbitMQ is up)
	var mailerService contracts.MailerService
	if bootstrap.RabbitMQ != nil {
		service, err := sharedmailer.NewMailerService(bootstrap.RabbitMQ, bootstrap.InternalConfig.Mailer.Queue)
		if err != nil {
			bootstrap.Logger.Fatal("failed to initialize mailer service", zap.Error(err))
		}
		mailerService = service

		smtpClient := smtpmailer.NewSMTPClient(bootstrap.DriverConfig)
		worker, err := sharedmailer.NewWorker(bootstrap.RabbitMQ, smtpClient, bootstrap.InternalConfig.Mailer.Queue, bootstrap.Logger)
		if err != nil {
			bootstrap.Logger.Fatal("failed to initialize mailer worker", zap.Error(err))
		}
		go func() {
			if err := worker.Start(workerCtx); err != nil {
				bootstrap.Logger.Error("mailer worker stopped", zap.Error(err))
			}
		}()
	}

	// Middlewares
	middlewares := middlewares.New(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// User
	userMongoRepository := users.NewUserMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, sessionService, bootstrap.InternalConfig, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)

	// Appointment
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentMongoRepository, sessionService, bus, bootstrap.Logger)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Notification
	notificationMongoRepository := notifications.NewNotificationMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	notificationUsecase := notifications.NewNotificationUsecase(notificationMongoRepository, sessionService, bootstrap.Logger)
	notificationController := controllers.NewNotificationController(bootstrap.Logger, notificationUsecase)

	dispatcher := notifications.NewNotificationDispatcher(notificationMongoRepository, userMongoRepository, mailerService, bootstrap.Logger)
	dispatcher.Register(bus)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		appointmentController,
		notificationController,
	)
}
