package updateBooking

import (
	"errors"
	"log/slog"
	"net/http"

	"bookingRegistry/internal/lib/api/request"
	"bookingRegistry/internal/lib/api/response"
	"bookingRegistry/internal/lib/logger/sl"
	"bookingRegistry/internal/models"
	"bookingRegistry/internal/storage"
	"bookingRegistry/internal/validator"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

const msgUpdated = "Booking updated"

type BookingResponse struct {
	response.Response
	Booking models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingUpdater
type BookingUpdater interface {
	GetBooking(id int) (models.Booking, error)
	UpdateBooking(id int, p models.BookingPayload) (models.Booking, error)
}

// New updates only the fields present in the body. Existence is checked
// before the body is validated, so an unknown id is always a 404.
func New(log *slog.Logger, updater BookingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.updateBooking.New"

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

		if _, err = updater.GetBooking(id); err != nil {
			responseStorageError(w, r, log, err)
			return
		}

		req, err := request.DecodePayload(r)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(response.MsgInvalidJSON))
			return
		}

		if errs := validator.ValidateBooking(req, false); len(errs) > 0 {
			log.Info("invalid request", slog.Any("errors", errs))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(errs))
			return
		}

		booking, err := updater.UpdateBooking(id, req)
		if err != nil {
			responseStorageError(w, r, log, err)
			return
		}

		log.Info("booking updated")

		render.JSON(w, r, BookingResponse{
			Response: response.Message(msgUpdated),
			Booking:  booking,
		})
	}
}

func responseStorageError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	if errors.Is(err, storage.ErrBookingNotFound) {
		log.Info("booking not found")
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error(response.MsgNotFound))
		return
	}

	log.Error("failed to update booking", sl.Err(err))
	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, response.Error("failed to update booking"))
}
