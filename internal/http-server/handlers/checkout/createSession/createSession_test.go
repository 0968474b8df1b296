package createSession

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taratrip/internal/http-server/handlers/checkout/createSession/mocks"
	"taratrip/internal/lib/logger/handlers/slogdiscard"
	"taratrip/internal/payment"
)

func TestCreateSessionHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(mock *mocks.SessionCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			requestBody: `{
				"hotel": "Shangri-La",
				"pricePerNight": 5000,
				"nights": 3,
				"guests": 2,
				"startDate": "2025-01-10",
				"endDate": "2025-01-13",
				"image": "https://example.com/img.jpg",
				"userId": "user_123"
			}`,
			mockSetup: func(mock *mocks.SessionCreator) {
				mock.On("CreateSession", payment.CheckoutDraft{
					Hotel:         "Shangri-La",
					PricePerNight: 5000,
					Nights:        3,
					Guests:        2,
					StartDate:     "2025-01-10",
					EndDate:       "2025-01-13",
					Image:         "https://example.com/img.jpg",
					UserID:        "user_123",
				}).Return("https://checkout.stripe.com/pay/cs_test_123", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"url":"https://checkout.stripe.com/pay/cs_test_123"}`,
		},
		{
			name:           "Zero nights fails before any provider call",
			requestBody:    `{"hotel":"Shangri-La","pricePerNight":2000,"nights":0}`,
			mockSetup:      func(mock *mocks.SessionCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Nights")
			},
		},
		{
			name:           "Missing hotel",
			requestBody:    `{"pricePerNight":2000,"nights":2}`,
			mockSetup:      func(mock *mocks.SessionCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Hotel")
			},
		},
		{
			name:           "Zero price",
			requestBody:    `{"hotel":"Shangri-La","pricePerNight":0,"nights":2}`,
			mockSetup:      func(mock *mocks.SessionCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "PricePerNight")
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `{{`,
			mockSetup:      func(mock *mocks.SessionCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"failed to decode request"}`,
		},
		{
			name:        "Provider not configured",
			requestBody: `{"hotel":"Shangri-La","pricePerNight":2000,"nights":2}`,
			mockSetup: func(mock *mocks.SessionCreator) {
				mock.On("CreateSession", payment.CheckoutDraft{
					Hotel:         "Shangri-La",
					PricePerNight: 2000,
					Nights:        2,
				}).Return("", payment.ErrNotConfigured)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"error":"payment is not configured"}`,
		},
		{
			name:        "Gateway failure stays generic",
			requestBody: `{"hotel":"Shangri-La","pricePerNight":2000,"nights":2}`,
			mockSetup: func(mock *mocks.SessionCreator) {
				mock.On("CreateSession", payment.CheckoutDraft{
					Hotel:         "Shangri-La",
					PricePerNight: 2000,
					Nights:        2,
				}).Return("", &payment.GatewayError{Err: errors.New("card_declined: secret detail")})
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"failed to create checkout session"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGateway := mocks.NewSessionCreator(t)
			tc.mockSetup(mockGateway)

			handler := New(logger, mockGateway)

			req, err := http.NewRequest(http.MethodPost, "/api/checkout", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
