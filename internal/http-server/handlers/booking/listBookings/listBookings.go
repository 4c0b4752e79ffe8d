package listBookings

import (
	"log/slog"
	"net/http"

	"bookingRegistry/internal/lib/api/response"
	"bookingRegistry/internal/lib/logger/sl"
	"bookingRegistry/internal/models"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsLister
type BookingsLister interface {
	ListBookings() ([]models.Booking, error)
}

func New(log *slog.Logger, lister BookingsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.listBookings.New"

		log := log.With(slog.String("op", op))

		bookings, err := lister.ListBookings()
		if err != nil {
			log.Error("failed to list bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list bookings"))
			return
		}

		log.Info("bookings listed", slog.Int("count", len(bookings)))

		responseOK(w, r, bookings)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, bookings []models.Booking) {
	if bookings == nil {
		bookings = []models.Booking{}
	}

	render.JSON(w, r, bookings)
}
