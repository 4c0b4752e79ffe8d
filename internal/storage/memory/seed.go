package memory

import "bookingRegistry/internal/models"

var seedBookings = []models.BookingPayload{
	{
		Name:         models.Some("Asha Patel"),
		Email:        models.Some("asha@example.com"),
		Phone:        models.Some("9876543210"),
		Organization: models.Some("Synergia College"),
		Tickets:      models.Some(2.0),
	},
	{
		Name:  models.Some("Ravi Kumar"),
		Email: models.Some("ravi.kumar@example.com"),
		Notes: models.Some("Vegetarian"),
	},
}

// Seed adds the demo bookings the service starts with. They take ids from
// the regular counter.
func (s *Storage) Seed() []models.Booking {
	seeded := make([]models.Booking, 0, len(seedBookings))

	for _, p := range seedBookings {
		b, _ := s.CreateBooking(p)
		seeded = append(seeded, b)
	}

	return seeded
}
