package hotels

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taratrip/internal/config"
	"taratrip/internal/lib/logger/handlers/slogdiscard"
)

const listBody = `{
	"result": {
		"list": [
			{
				"name": "Shangri-La Boracay",
				"accommodation_type": "Resort",
				"url": "https://example.com/shangri-la",
				"image": "https://example.com/shangri-la.jpg",
				"review_summary": {"rating": 4.5, "count": 1280},
				"price_ranges": {"minimum": 150, "maximum": 300}
			},
			{
				"name": "",
				"accommodation_type": "",
				"review_summary": {"rating": 0, "count": 0},
				"price_ranges": null
			},
			{
				"name": "Budget Inn",
				"accommodation_type": "Hotel",
				"review_summary": null,
				"price_ranges": {"minimum": 10, "maximum": 20}
			}
		]
	}
}`

func newTestClient(t *testing.T, baseURL string, proxies []string) *Client {
	t.Helper()

	cfg := &config.HotelAPI{
		BaseURL:      baseURL,
		Proxies:      proxies,
		ResultLimit:  2,
		ExchangeRate: 56,
		Timeout:      2 * time.Second,
	}

	return NewClient(cfg, NewResolver("boracay"), nil, slogdiscard.NewDiscardLogger())
}

func TestSearchNormalizesListings(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/list", r.URL.Path)
		assert.Equal(t, "g294260", r.URL.Query().Get("location_key"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		assert.Equal(t, "0", r.URL.Query().Get("offset"))
		assert.Equal(t, "best_value", r.URL.Query().Get("sort"))

		w.Write([]byte(listBody))
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL, nil)

	result, err := client.Search(context.Background(), "boracay")
	require.NoError(t, err)

	assert.Equal(t, "Boracay, Philippines", result.Location)
	// Truncated to the configured limit even though upstream sent three.
	require.Len(t, result.Hotels, 2)

	first := result.Hotels[0]
	assert.Equal(t, "Shangri-La Boracay", first.Name)
	assert.Equal(t, "Resort", first.Accommodation)
	assert.Equal(t, "4.5", first.Rating)
	assert.Equal(t, 1280, first.ReviewCount)
	assert.Equal(t, "1280 reviews", first.ReviewLabel)
	assert.Equal(t, "₱16,800 per night", first.Price)
	require.NotNil(t, first.PriceAmount)
	assert.Equal(t, 16800, *first.PriceAmount)
	assert.Equal(t, "https://example.com/shangri-la.jpg", first.Image)
	assert.Equal(t, "https://example.com/shangri-la", first.URL)

	second := result.Hotels[1]
	assert.Equal(t, "Unknown Hotel", second.Name)
	assert.Equal(t, "Hotel", second.Accommodation)
	assert.Equal(t, "N/A", second.Rating)
	assert.Equal(t, "No reviews", second.ReviewLabel)
	assert.Equal(t, "Rate info unavailable", second.Price)
	assert.Nil(t, second.PriceAmount)
}

func TestSearchUpstreamErrorPayload(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": {"message": "invalid location key"}}`))
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL, nil)

	_, err := client.Search(context.Background(), "boracay")
	require.Error(t, err)

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, "invalid location key", upstreamErr.Message)
}

func TestSearchFallsBackToProxy(t *testing.T) {
	t.Parallel()

	var proxied string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		proxied = r.URL.Query().Get("target")
		w.Write([]byte(listBody))
	}))
	defer ts.Close()

	// Nothing listens on the direct base URL; the proxy endpoint serves the
	// payload instead.
	client := newTestClient(t, "http://127.0.0.1:1", []string{ts.URL + "/?target="})

	result, err := client.Search(context.Background(), "boracay")
	require.NoError(t, err)

	assert.Len(t, result.Hotels, 2)
	assert.Contains(t, proxied, "http://127.0.0.1:1/list")
}

func TestSearchAllEndpointsUnreachable(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "http://127.0.0.1:1", []string{"http://127.0.0.1:2/?target="})

	_, err := client.Search(context.Background(), "boracay")
	require.Error(t, err)

	assert.ErrorContains(t, err, "hotel directory unreachable")

	// Transport failures are not upstream payload errors.
	var upstreamErr *UpstreamError
	assert.False(t, errors.As(err, &upstreamErr))
}
