package hotels

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"taratrip/internal/config"
	"taratrip/internal/lib/logger/sl"
	"taratrip/internal/models"
)

// UpstreamError reports an error payload returned by the hotel directory
// itself, as opposed to a transport failure.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("hotel directory error: %s", e.Message)
}

// SearchResult is a resolved location label plus its normalized listings.
type SearchResult struct {
	Location string
	Hotels   []models.Listing
}

// Client relays searches to the upstream hotel directory. The upstream does
// not allow in-browser cross-origin calls, so browsers go through this relay;
// the relay itself can additionally fall back to configured proxy endpoints
// when the direct route is unreachable.
type Client struct {
	baseURL      string
	proxies      []string
	limit        int
	exchangeRate float64
	resolver     *Resolver
	cache        *SearchCache
	httpClient   *http.Client
	printer      *message.Printer
	log          *slog.Logger
}

func NewClient(cfg *config.HotelAPI, resolver *Resolver, cache *SearchCache, log *slog.Logger) *Client {
	return &Client{
		baseURL:      cfg.BaseURL,
		proxies:      cfg.Proxies,
		limit:        cfg.ResultLimit,
		exchangeRate: cfg.ExchangeRate,
		resolver:     resolver,
		cache:        cache,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		printer:      message.NewPrinter(language.English),
		log:          log,
	}
}

type reviewSummary struct {
	Rating float64 `json:"rating"`
	Count  int     `json:"count"`
}

type priceRanges struct {
	Minimum float64 `json:"minimum"`
	Maximum float64 `json:"maximum"`
}

type rawHotel struct {
	Name              string         `json:"name"`
	AccommodationType string         `json:"accommodation_type"`
	URL               string         `json:"url"`
	Image             string         `json:"image"`
	ReviewSummary     *reviewSummary `json:"review_summary"`
	PriceRanges       *priceRanges   `json:"price_ranges"`
}

type listPayload struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
	Result struct {
		List []rawHotel `json:"list"`
	} `json:"result"`
}

// Search resolves the query to a location and returns up to the configured
// number of normalized listings for it.
func (c *Client) Search(ctx context.Context, query string) (SearchResult, error) {
	loc := c.resolver.Resolve(query)

	if listings, ok := c.cache.Get(ctx, loc.Key); ok {
		return SearchResult{Location: loc.Label, Hotels: listings}, nil
	}

	target := fmt.Sprintf("%s/list?location_key=%s&limit=%d&offset=0&sort=best_value",
		c.baseURL, loc.Key, c.limit)

	body, err := c.fetch(ctx, target)
	if err != nil {
		return SearchResult{}, err
	}

	var payload listPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return SearchResult{}, fmt.Errorf("failed to decode hotel directory response: %w", err)
	}

	if payload.Error != nil {
		return SearchResult{}, &UpstreamError{Message: payload.Error.Message}
	}

	listings := make([]models.Listing, 0, len(payload.Result.List))
	for _, raw := range payload.Result.List {
		listings = append(listings, c.formatListing(raw))
		if len(listings) == c.limit {
			break
		}
	}

	c.cache.Set(ctx, loc.Key, listings)

	return SearchResult{Location: loc.Label, Hotels: listings}, nil
}

// fetch tries the upstream directly, then each configured proxy endpoint in
// order. Only transport failures move on to the next endpoint; once any
// endpoint answers, its body is final regardless of what the payload says.
func (c *Client) fetch(ctx context.Context, target string) ([]byte, error) {
	endpoints := make([]string, 0, len(c.proxies)+1)
	endpoints = append(endpoints, target)
	for _, proxy := range c.proxies {
		endpoints = append(endpoints, proxy+url.QueryEscape(target))
	}

	var lastErr error
	for _, endpoint := range endpoints {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			lastErr = err
			continue
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.log.Warn("hotel directory request failed", sl.Err(err))
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		return body, nil
	}

	return nil, fmt.Errorf("hotel directory unreachable: %w", lastErr)
}

func (c *Client) formatListing(raw rawHotel) models.Listing {
	listing := models.Listing{
		Name:          raw.Name,
		Accommodation: raw.AccommodationType,
		Rating:        "N/A",
		ReviewLabel:   "No reviews",
		Image:         raw.Image,
		URL:           raw.URL,
	}

	if listing.Name == "" {
		listing.Name = "Unknown Hotel"
	}
	if listing.Accommodation == "" {
		listing.Accommodation = "Hotel"
	}

	if raw.ReviewSummary != nil {
		if raw.ReviewSummary.Rating > 0 {
			listing.Rating = strconv.FormatFloat(raw.ReviewSummary.Rating, 'f', 1, 64)
		}
		listing.ReviewCount = raw.ReviewSummary.Count
		if listing.ReviewCount > 0 {
			listing.ReviewLabel = fmt.Sprintf("%d reviews", listing.ReviewCount)
		}
	}

	listing.Price, listing.PriceAmount = c.formatPrice(raw.PriceRanges)

	return listing
}

// formatPrice converts the upstream USD maximum to display pesos at the
// fixed rate. Listings without both range bounds have no usable rate.
func (c *Client) formatPrice(ranges *priceRanges) (string, *int) {
	if ranges == nil || ranges.Minimum == 0 || ranges.Maximum == 0 {
		return "Rate info unavailable", nil
	}

	amount := int(math.Round(ranges.Maximum * c.exchangeRate))

	return c.printer.Sprintf("₱%d per night", amount), &amount
}
