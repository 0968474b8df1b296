package payment

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taratrip/internal/config"
)

func TestTotalAmount(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		draft    CheckoutDraft
		expected int64
	}{
		{
			name:     "Three nights",
			draft:    CheckoutDraft{PricePerNight: 5000, Nights: 3},
			expected: 15000,
		},
		{
			name:     "Rate rounded before multiplying",
			draft:    CheckoutDraft{PricePerNight: 1999.60, Nights: 2},
			expected: 4000,
		},
		{
			name:     "Zero nights charged as one",
			draft:    CheckoutDraft{PricePerNight: 2000, Nights: 0},
			expected: 2000,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, tc.draft.TotalAmount())
		})
	}
}

func TestBuildSuccessURL(t *testing.T) {
	t.Parallel()

	gateway := NewGateway(&config.Stripe{
		SuccessURL: "http://localhost:3000/thank-you",
	})

	raw := gateway.BuildSuccessURL(CheckoutDraft{
		Hotel:         "Shangri-La",
		PricePerNight: 5000,
		Nights:        3,
		Guests:        2,
		StartDate:     "2025-01-10",
		EndDate:       "2025-01-13",
		Image:         "https://example.com/img.jpg",
		UserID:        "user_123",
	})

	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	q := parsed.Query()
	assert.Equal(t, "user_123", q.Get("user_id"))
	assert.Equal(t, "Shangri-La", q.Get("hotel"))
	assert.Equal(t, "2025-01-10", q.Get("start_date"))
	assert.Equal(t, "2025-01-13", q.Get("end_date"))
	assert.Equal(t, "2", q.Get("guests"))
	assert.Equal(t, "3", q.Get("nights"))
	assert.Equal(t, "15000", q.Get("total"))
	assert.Equal(t, "https://example.com/img.jpg", q.Get("image"))
}

func TestBuildSuccessURLExistingQuery(t *testing.T) {
	t.Parallel()

	gateway := NewGateway(&config.Stripe{
		SuccessURL: "http://localhost:5500/index.html?payment=success",
	})

	raw := gateway.BuildSuccessURL(CheckoutDraft{Hotel: "Inn", Nights: 1})

	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	q := parsed.Query()
	assert.Equal(t, "success", q.Get("payment"))
	assert.Equal(t, "Inn", q.Get("hotel"))
}

func TestCreateSessionNotConfigured(t *testing.T) {
	t.Parallel()

	gateway := NewGateway(&config.Stripe{SuccessURL: "http://localhost:3000/thank-you"})

	_, err := gateway.CreateSession(CheckoutDraft{Hotel: "Inn", PricePerNight: 100, Nights: 1})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
