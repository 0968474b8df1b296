package payment

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/checkout/session"

	"taratrip/internal/config"
)

// ErrNotConfigured is returned when no stripe secret key is set; no provider
// call is attempted in that case.
var ErrNotConfigured = errors.New("stripe secret key is not configured")

// GatewayError wraps a provider-side failure. The provider's own message is
// kept for logs only and never shown to the caller.
type GatewayError struct {
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("stripe checkout session failed: %v", e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// CheckoutDraft is a normalized booking awaiting payment.
type CheckoutDraft struct {
	Hotel         string
	PricePerNight float64
	Nights        int
	Guests        int
	StartDate     string
	EndDate       string
	Image         string
	UserID        string
}

// TotalAmount is the charged total in display units: the rounded nightly
// rate times the night count, with a minimum of one night.
func (d CheckoutDraft) TotalAmount() int64 {
	nights := d.Nights
	if nights < 1 {
		nights = 1
	}

	return int64(math.Round(d.PricePerNight)) * int64(nights)
}

// Gateway creates hosted checkout sessions with stripe.
type Gateway struct {
	secretKey  string
	successURL string
	cancelURL  string
}

func NewGateway(cfg *config.Stripe) *Gateway {
	stripe.Key = cfg.SecretKey

	return &Gateway{
		secretKey:  cfg.SecretKey,
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
	}
}

// CreateSession creates a single-line-item hosted checkout session and
// returns its redirect URL. Booking fields ride along on the success URL so
// the confirmation page can persist the booking without server-side session
// state.
func (g *Gateway) CreateSession(draft CheckoutDraft) (string, error) {
	if g.secretKey == "" {
		return "", ErrNotConfigured
	}

	total := draft.TotalAmount()

	description := fmt.Sprintf("%d night(s) • %d guest(s) • %s to %s",
		draft.Nights, draft.Guests, draft.StartDate, draft.EndDate)

	productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
		Name:        stripe.String(draft.Hotel),
		Description: stripe.String(description),
	}
	if draft.Image != "" {
		productData.Images = stripe.StringSlice([]string{draft.Image})
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:    stripe.String("php"),
					ProductData: productData,
					// Stripe charges in centavos.
					UnitAmount: stripe.Int64(total * 100),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(g.BuildSuccessURL(draft)),
		CancelURL:  stripe.String(g.cancelURL),
	}

	s, err := session.New(params)
	if err != nil {
		return "", &GatewayError{Err: err}
	}

	return s.URL, nil
}

// BuildSuccessURL encodes the booking fields as query parameters on the
// configured success-redirect URL.
func (g *Gateway) BuildSuccessURL(draft CheckoutDraft) string {
	values := url.Values{}
	values.Set("user_id", draft.UserID)
	values.Set("hotel", draft.Hotel)
	values.Set("start_date", draft.StartDate)
	values.Set("end_date", draft.EndDate)
	values.Set("guests", strconv.Itoa(draft.Guests))
	values.Set("nights", strconv.Itoa(draft.Nights))
	values.Set("total", strconv.FormatInt(draft.TotalAmount(), 10))
	values.Set("image", draft.Image)

	sep := "?"
	if strings.Contains(g.successURL, "?") {
		sep = "&"
	}

	return g.successURL + sep + values.Encode()
}
