package createBooking

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bookingRegistry/internal/http-server/handlers/booking/createBooking/mocks"
	"bookingRegistry/internal/lib/logger/handlers/slogdiscard"
	"bookingRegistry/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 12, 25, 18, 0, 0, 0, time.UTC)

func TestCreateBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	created := models.Booking{
		ID:        3,
		Name:      models.StringPtr("A"),
		Email:     models.StringPtr("a@b.com"),
		Tickets:   1,
		CreatedAt: testTime,
	}

	testCases := []struct {
		name           string
		requestBody    string
		contentType    string
		mockSetup      func(mock *mocks.BookingCreator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: `{"name": "A", "email": "a@b.com"}`,
			contentType: "application/json",
			mockSetup: func(m *mocks.BookingCreator) {
				m.On("CreateBooking", models.BookingPayload{
					Name:  models.Some("A"),
					Email: models.Some("a@b.com"),
				}).Return(created, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody: `{
				"message": "Booking created",
				"booking": {
					"id": 3,
					"name": "A",
					"email": "a@b.com",
					"phone": null,
					"organization": null,
					"tickets": 1,
					"notes": null,
					"createdAt": "2024-12-25T18:00:00Z"
				}
			}`,
		},
		{
			name:           "Empty object",
			requestBody:    `{}`,
			contentType:    "application/json",
			mockSetup:      func(m *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"errors":["name is required","email is required"]}`,
		},
		{
			name:           "No body",
			requestBody:    ``,
			contentType:    "application/json",
			mockSetup:      func(m *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"errors":["name is required","email is required"]}`,
		},
		{
			name:           "Body not declared as JSON",
			requestBody:    `{"name": "A", "email": "a@b.com"}`,
			contentType:    "text/plain",
			mockSetup:      func(m *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"errors":["name is required","email is required"]}`,
		},
		{
			name:           "Invalid email and tickets",
			requestBody:    `{"name": "A", "email": "a@b", "tickets": 0}`,
			contentType:    "application/json",
			mockSetup:      func(m *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"errors":["email is not valid","tickets must be a positive integer"]}`,
		},
		{
			name:           "Malformed JSON",
			requestBody:    `{"name": `,
			contentType:    "application/json",
			mockSetup:      func(m *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid JSON body. Check syntax."}`,
		},
		{
			name:        "Storage error",
			requestBody: `{"name": "A", "email": "a@b.com"}`,
			contentType: "application/json",
			mockSetup: func(m *mocks.BookingCreator) {
				m.On("CreateBooking", mock.Anything).Return(models.Booking{}, errors.New("storage failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"failed to create booking"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewBookingCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)
			req.Header.Set("Content-Type", tc.contentType)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}

func TestCreateBookingPassesOptionalFields(t *testing.T) {
	t.Parallel()

	mockCreator := mocks.NewBookingCreator(t)
	handler := New(slogdiscard.NewDiscardLogger(), mockCreator)

	mockCreator.On("CreateBooking", mock.MatchedBy(func(p models.BookingPayload) bool {
		return p.Phone == models.Some("123") &&
			p.Organization == models.Null[string]() &&
			p.Tickets == models.Some(4.0) &&
			!p.Notes.Set
	})).Return(models.Booking{ID: 1, Tickets: 4, CreatedAt: testTime}, nil)

	body := `{"name": "A", "email": "a@b.com", "phone": "123", "organization": null, "tickets": 4, "id": 99}`
	req, err := http.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Booking created", resp.Message)
	assert.Equal(t, 1, resp.Booking.ID)
}

func TestResponseCreated(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rr := httptest.NewRecorder()

	responseCreated(rr, req, models.Booking{ID: 5, Tickets: 1, CreatedAt: testTime})

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, msgCreated, resp.Message)
	assert.Empty(t, resp.Error)
	assert.Equal(t, 5, resp.Booking.ID)
}
