package models

import "time"

// Booking is a single reservation held by the registry. Optional text fields
// are nil when absent and encode as JSON null.
type Booking struct {
	ID           int        `json:"id"`
	Name         *string    `json:"name"`
	Email        *string    `json:"email"`
	Phone        *string    `json:"phone"`
	Organization *string    `json:"organization"`
	Tickets      int        `json:"tickets"`
	Notes        *string    `json:"notes"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

const DefaultTickets = 1

// NewBooking builds a booking from an already validated create payload.
func NewBooking(id int, p BookingPayload, now time.Time) Booking {
	b := Booking{
		ID:           id,
		Name:         p.Name.Ptr(),
		Email:        p.Email.Ptr(),
		Phone:        nonEmpty(p.Phone),
		Organization: nonEmpty(p.Organization),
		Tickets:      DefaultTickets,
		Notes:        nonEmpty(p.Notes),
		CreatedAt:    now,
	}

	if p.Tickets.Set && !p.Tickets.Null && p.Tickets.Value != 0 {
		b.Tickets = int(p.Tickets.Value)
	}

	return b
}

// Apply copies every allow-listed field present in p onto b and stamps
// UpdatedAt, even when p carries nothing.
func (b *Booking) Apply(p BookingPayload, now time.Time) {
	if p.Name.Set {
		b.Name = p.Name.Ptr()
	}
	if p.Email.Set {
		b.Email = p.Email.Ptr()
	}
	if p.Phone.Set {
		b.Phone = p.Phone.Ptr()
	}
	if p.Organization.Set {
		b.Organization = p.Organization.Ptr()
	}
	if p.Tickets.Set && !p.Tickets.Null {
		b.Tickets = int(p.Tickets.Value)
	}
	if p.Notes.Set {
		b.Notes = p.Notes.Ptr()
	}

	b.UpdatedAt = &now
}

func (b Booking) Clone() Booking {
	c := b
	c.Name = cloneString(b.Name)
	c.Email = cloneString(b.Email)
	c.Phone = cloneString(b.Phone)
	c.Organization = cloneString(b.Organization)
	c.Notes = cloneString(b.Notes)

	if b.UpdatedAt != nil {
		t := *b.UpdatedAt
		c.UpdatedAt = &t
	}

	return c
}

func StringPtr(s string) *string {
	return &s
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// nonEmpty treats an empty string like a missing value.
func nonEmpty(f Field[string]) *string {
	if f.Value == "" {
		return nil
	}
	return f.Ptr()
}
