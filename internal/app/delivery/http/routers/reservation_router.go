package routers

import (
	"booking-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachReservationRoutes(router chi.Router, c *controllers.ReservationController) {
	router.Post("/", c.BeginReservation)
	router.Post("/commit", c.CommitReservation)
	router.Post("/abort", c.AbortReservation)
}
