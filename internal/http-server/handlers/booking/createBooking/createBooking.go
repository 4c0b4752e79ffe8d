package createBooking

import (
	"log/slog"
	"net/http"

	"bookingRegistry/internal/lib/api/request"
	"bookingRegistry/internal/lib/api/response"
	"bookingRegistry/internal/lib/logger/sl"
	"bookingRegistry/internal/models"
	"bookingRegistry/internal/validator"

	"github.com/go-chi/render"
)

const msgCreated = "Booking created"

type BookingResponse struct {
	response.Response
	Booking models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(p models.BookingPayload) (models.Booking, error)
}

func New(log *slog.Logger, creator BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log := log.With(slog.String("op", op))

		req, err := request.DecodePayload(r)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(response.MsgInvalidJSON))
			return
		}

		if errs := validator.ValidateBooking(req, true); len(errs) > 0 {
			log.Info("invalid request", slog.Any("errors", errs))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(errs))
			return
		}

		booking, err := creator.CreateBooking(req)
		if err != nil {
			log.Error("failed to create booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create booking"))
			return
		}

		log.Info("booking created", slog.Int("id", booking.ID))

		responseCreated(w, r, booking)
	}
}

func responseCreated(w http.ResponseWriter, r *http.Request, booking models.Booking) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, BookingResponse{
		Response: response.Message(msgCreated),
		Booking:  booking,
	})
}
