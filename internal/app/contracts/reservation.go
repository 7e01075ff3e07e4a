package contracts

import (
	"booking-service/internal/pkg/dto/requests"
	"context"
)

// ReservationUsecase is the three-phase booking protocol: a begin claims the
// slot, then exactly one of commit or abort releases the claim. Begin and
// commit can fail; abort never does.
type ReservationUsecase interface {
	BeginReservation(ctx context.Context, instanceID string, input requests.BeginReservation) error
	CommitReservation(ctx context.Context, instanceID string, input requests.CommitReservation) error
	AbortReservation(ctx context.Context, instanceID string, input requests.AbortReservation) error
}
