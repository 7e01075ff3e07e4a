package routers

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/delivery/http/controllers"
	"booking-service/internal/app/delivery/http/middlewares"
	"booking-service/internal/pkg/constvars"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewareInstance *middlewares.Middlewares,
	availabilityController *controllers.AvailabilityController,
	reservationController *controllers.ReservationController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", constvars.HeaderXRequestID},
		ExposedHeaders:   []string{"Link", constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(middlewareInstance.RequestID)
	router.Use(middlewareInstance.Logging)
	router.Use(middlewareInstance.ErrorHandler)

	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)
	if internalConfig.App.EndpointPrefix != "" {
		versionPrefix = fmt.Sprintf("/%s%s", internalConfig.App.EndpointPrefix, versionPrefix)
	}

	router.Route(versionPrefix, func(r chi.Router) {
		r.Route(fmt.Sprintf("/{%s}", constvars.URLParamInstanceID), func(r chi.Router) {
			r.Route("/availability", func(r chi.Router) {
				attachAvailabilityRoutes(r, availabilityController)
			})

			r.Route("/reservations", func(r chi.Router) {
				attachReservationRoutes(r, reservationController)
			})
		})
	})
}
