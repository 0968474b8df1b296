package createBooking

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"taratrip/internal/lib/api/response"
	"taratrip/internal/lib/logger/sl"
	"taratrip/internal/models"
)

type BookingRequest struct {
	UserID      string  `json:"userId"`
	Hotel       string  `json:"hotel" validate:"required"`
	StartDate   string  `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate     string  `json:"endDate" validate:"required,datetime=2006-01-02"`
	Guests      int     `json:"guests"`
	Nights      int     `json:"nights"`
	TotalAmount float64 `json:"totalAmount"`
	Image       string  `json:"image"`
}

type BookingResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(booking models.NewBooking) error
}

func New(log *slog.Logger, bookings BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		err = bookings.CreateBooking(models.NewBooking{
			UserID:      req.UserID,
			Hotel:       req.Hotel,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			Guests:      req.Guests,
			Nights:      req.Nights,
			TotalAmount: req.TotalAmount,
			Image:       req.Image,
		})
		if err != nil {
			log.Error("failed to create booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create booking"))
			return
		}

		log.Info("booking created", slog.String("hotel", req.Hotel), slog.String("user_id", req.UserID))

		responseOK(w, r)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK("Booking created successfully"),
	})
}
