package router

import (
	"log/slog"
	"net/http"

	"bookingRegistry/internal/config"
	"bookingRegistry/internal/http-server/handlers/booking/cancelBooking"
	"bookingRegistry/internal/http-server/handlers/booking/createBooking"
	"bookingRegistry/internal/http-server/handlers/booking/getBooking"
	"bookingRegistry/internal/http-server/handlers/booking/listBookings"
	"bookingRegistry/internal/http-server/handlers/booking/updateBooking"
	"bookingRegistry/internal/http-server/handlers/health"
	"bookingRegistry/internal/http-server/middleware/mwjson"
	"bookingRegistry/internal/http-server/middleware/mwlogger"
	"bookingRegistry/internal/lib/api/response"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
)

// Storage is everything the HTTP layer needs from a booking store.
type Storage interface {
	listBookings.BookingsLister
	createBooking.BookingCreator
	getBooking.BookingGetter
	updateBooking.BookingUpdater
	cancelBooking.BookingCanceller
	health.BookingCounter
}

func New(log *slog.Logger, cfg *config.Config, storage Storage) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))
	router.Use(mwjson.New(log, cfg.HTTPServer.MaxBodyBytes))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error(response.MsgRouteNotFound))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, http.StatusMethodNotAllowed)
		render.JSON(w, r, response.Error(response.MsgNotAllowed))
	})

	router.Get("/health", health.New(storage))

	router.Route("/api/bookings", func(r chi.Router) {
		r.Get("/", listBookings.New(log, storage))
		r.Post("/", createBooking.New(log, storage))
		r.Get("/{id}", getBooking.New(log, storage))
		r.Put("/{id}", updateBooking.New(log, storage))
		r.Delete("/{id}", cancelBooking.New(log, storage))
	})

	return router
}
