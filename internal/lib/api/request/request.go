package request

import (
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"bookingRegistry/internal/models"

	"github.com/go-chi/render"
)

var (
	// ErrInvalidID means the path segment is not a number at all.
	ErrInvalidID = errors.New("invalid id")
	// ErrUnknownID means the segment is a number that no booking can carry,
	// such as 1.5.
	ErrUnknownID = errors.New("id cannot name a booking")
)

// maxID is the largest whole number a float64 represents exactly.
const maxID = 1<<53 - 1

// ParseID reads a booking id from a path segment. Surrounding whitespace is
// ignored and any finite number is accepted, including 0x, 0o and 0b
// literals; only whole numbers come back as an id.
func ParseID(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ErrUnknownID
	}

	f, err := parseNumber(s)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrInvalidID
	}

	if f != math.Trunc(f) || math.Abs(f) > maxID {
		return 0, ErrUnknownID
	}

	return int(f), nil
}

func parseNumber(s string) (float64, error) {
	if len(s) > 2 && s[0] == '0' && !strings.Contains(s, "_") {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}

		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return 0, err
			}
			return float64(n), nil
		}
	}

	if strings.Contains(s, "_") {
		return 0, strconv.ErrSyntax
	}

	return strconv.ParseFloat(s, 64)
}

// DecodePayload reads a booking payload from the request body. A missing body,
// an empty body or a body that is not declared as JSON decodes as an empty
// payload.
func DecodePayload(r *http.Request) (models.BookingPayload, error) {
	var p models.BookingPayload

	if r.Body == nil || render.GetRequestContentType(r) != render.ContentTypeJSON {
		return p, nil
	}

	if err := render.DecodeJSON(r.Body, &p); err != nil {
		if errors.Is(err, io.EOF) {
			return models.BookingPayload{}, nil
		}
		return models.BookingPayload{}, fmt.Errorf("decode booking payload: %w", err)
	}

	return p, nil
}
