package utils

import (
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateOccurrenceID builds a UUIDv7 whose 48-bit timestamp prefix is the
// occurrence's start instant, so ids sort chronologically.
func GenerateOccurrenceID(start time.Time) string {
	u := uuid.Must(uuid.NewV7())
	ts := start.UnixMilli()

	u[0] = byte(ts >> 40)
	u[1] = byte(ts >> 32)
	u[2] = byte(ts >> 24)
	u[3] = byte(ts >> 16)
	u[4] = byte(ts >> 8)
	u[5] = byte(ts)

	return hex.EncodeToString(u[:])
}

// GenerateBookingKey derives the bookings row key from the booked instant.
func GenerateBookingKey(bookDate time.Time) string {
	return GenerateOccurrenceID(bookDate)
}
