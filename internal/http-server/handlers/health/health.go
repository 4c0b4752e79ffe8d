package health

import (
	"net/http"

	"github.com/go-chi/render"
)

type Response struct {
	Status   string `json:"status"`
	Bookings int    `json:"bookings"`
}

type BookingCounter interface {
	Count() int
}

// New reports liveness together with the number of bookings held.
func New(counter BookingCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, Response{
			Status:   "ok",
			Bookings: counter.Count(),
		})
	}
}
