package createSession

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"taratrip/internal/lib/api/response"
	"taratrip/internal/lib/logger/sl"
	"taratrip/internal/payment"
)

type CheckoutRequest struct {
	Hotel         string  `json:"hotel" validate:"required"`
	PricePerNight float64 `json:"pricePerNight" validate:"required"`
	Nights        int     `json:"nights" validate:"required"`
	Guests        int     `json:"guests"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	Image         string  `json:"image"`
	UserID        string  `json:"userId"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionCreator
type SessionCreator interface {
	CreateSession(draft payment.CheckoutDraft) (string, error)
}

func New(log *slog.Logger, gateway SessionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.checkout.createSession.New"

		log = log.With(slog.String("op", op))

		var req CheckoutRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		// The required tag treats zero values as missing, so nights=0 or
		// pricePerNight=0 never reaches the payment provider.
		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		url, err := gateway.CreateSession(payment.CheckoutDraft{
			Hotel:         req.Hotel,
			PricePerNight: req.PricePerNight,
			Nights:        req.Nights,
			Guests:        req.Guests,
			StartDate:     req.StartDate,
			EndDate:       req.EndDate,
			Image:         req.Image,
			UserID:        req.UserID,
		})
		if err != nil {
			log.Error("failed to create checkout session", sl.Err(err))

			if errors.Is(err, payment.ErrNotConfigured) {
				render.Status(r, http.StatusServiceUnavailable)
				render.JSON(w, r, response.Error("payment is not configured"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create checkout session"))
			return
		}

		log.Info("checkout session created", slog.String("hotel", req.Hotel))

		render.JSON(w, r, CheckoutResponse{URL: url})
	}
}
