package getBooking

import (
	"errors"
	"log/slog"
	"net/http"

	"bookingRegistry/internal/lib/api/request"
	"bookingRegistry/internal/lib/api/response"
	"bookingRegistry/internal/lib/logger/sl"
	"bookingRegistry/internal/models"
	"bookingRegistry/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingGetter
type BookingGetter interface {
	GetBooking(id int) (models.Booking, error)
}

func New(log *slog.Logger, getter BookingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getBooking.New"

		log := log.With(slog.String("op", op))

		idStr := chi.URLParam(r, "id")

		id, err := request.ParseID(idStr)
		if err != nil {
			log.Info("unusable booking id", slog.String("id", idStr), sl.Err(err))

			if errors.Is(err, request.ErrUnknownID) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(response.MsgNotFound))
				return
			}

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(response.MsgInvalidID))
			return
		}

		log = log.With(slog.Int("booking_id", id))

		booking, err := getter.GetBooking(id)
		if err != nil {
			if errors.Is(err, storage.ErrBookingNotFound) {
				log.Info("booking not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(response.MsgNotFound))
				return
			}

			log.Error("failed to get booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get booking"))
			return
		}

		log.Info("booking retrieved")

		render.JSON(w, r, booking)
	}
}
