package main

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/delivery/http/controllers"
	"booking-service/internal/app/delivery/http/middlewares"
	"booking-service/internal/app/delivery/http/routers"
	"booking-service/internal/app/drivers/database"
	"booking-service/internal/app/drivers/logger"
	"booking-service/internal/app/services/availability"
	"booking-service/internal/app/services/cms_store"
	"booking-service/internal/app/services/cms_store/bookings"
	"booking-service/internal/app/services/cms_store/schedules"
	"booking-service/internal/app/services/cms_store/services"
	"booking-service/internal/app/services/cms_store/staff_schedules"
	"booking-service/internal/app/services/reservations"
	"booking-service/internal/app/services/shared/locker"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	bootstrap := config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if internalConfig.Reservation.LockBackend == "redis" {
		bootstrap.Redis = database.NewRedisClient(driverConfig)
	}

	bootstrapTheApp(&bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
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
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error while closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) {
	// CMS store clients share one rate limited transport.
	requester := cms_store.NewRequester(
		bootstrap.InternalConfig.CMS.BaseUrl,
		bootstrap.InternalConfig.CMS.RequestsPerSecond,
	)
	staffScheduleClient := staff_schedules.NewStaffScheduleCmsClient(requester)
	scheduleClient := schedules.NewScheduleCmsClient(requester)
	serviceClient := services.NewServiceCmsClient(requester)
	bookingClient := bookings.NewBookingCmsClient(requester)

	// Locker
	var lockerService contracts.LockerService
	if bootstrap.InternalConfig.Reservation.LockBackend == "redis" {
		lockerService = locker.NewRedisLocker(bootstrap.Redis, bootstrap.Logger)
	} else {
		lockerService = locker.NewMemoryLocker(bootstrap.Logger)
	}
	lockTTL := time.Duration(bootstrap.InternalConfig.Reservation.LockTTLInMinute) * time.Minute

	// Availability
	availabilityUsecase := availability.NewAvailabilityUsecase(
		staffScheduleClient, scheduleClient, bookingClient, bootstrap.Logger)
	availabilityController := controllers.NewAvailabilityController(bootstrap.Logger, availabilityUsecase)

	// Reservations
	reservationUsecase := reservations.NewReservationUsecase(
		availabilityUsecase, scheduleClient, serviceClient, bookingClient, lockerService, lockTTL, bootstrap.Logger)
	reservationController := controllers.NewReservationController(bootstrap.Logger, reservationUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		InternalConfig: bootstrap.InternalConfig,
	}

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewareInstance,
		availabilityController, reservationController)
}
