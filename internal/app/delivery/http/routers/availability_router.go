package routers

import (
	"booking-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAvailabilityRoutes(router chi.Router, c *controllers.AvailabilityController) {
	router.Get("/days", c.GetAvailableDays)
	router.Get("/hours", c.GetAvailableHours)
}
