package updateBooking

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"taratrip/internal/lib/api/response"
	"taratrip/internal/lib/logger/sl"
)

type UpdateRequest struct {
	BookingID string `json:"bookingId" validate:"required"`
	StartDate string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Guests    int    `json:"guests"`
	UserID    string `json:"userId"`
}

type UpdateResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingUpdater
type BookingUpdater interface {
	UpdateStay(id int, userID, startDate, endDate string, guests, nights int) error
	UpdateGuests(id int, userID string, guests int) error
}

func New(log *slog.Logger, bookings BookingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.updateBooking.New"

		log = log.With(slog.String("op", op))

		var req UpdateRequest

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

		bookingID, err := strconv.Atoi(req.BookingID)
		if err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		log = log.With(slog.Int("booking_id", bookingID))

		// Both dates present: recompute nights and replace the whole stay.
		// Otherwise only the guest count changes.
		if req.StartDate != "" && req.EndDate != "" {
			nights, err := nightsBetween(req.StartDate, req.EndDate)
			if err != nil {
				log.Error("invalid date format", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid date format"))
				return
			}

			err = bookings.UpdateStay(bookingID, req.UserID, req.StartDate, req.EndDate, req.Guests, nights)
			if err != nil {
				log.Error("failed to update booking", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update booking"))
				return
			}
		} else {
			err = bookings.UpdateGuests(bookingID, req.UserID, req.Guests)
			if err != nil {
				log.Error("failed to update booking", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update booking"))
				return
			}
		}

		log.Info("booking updated")

		responseOK(w, r)
	}
}

// nightsBetween is the calendar-day difference between two dates.
func nightsBetween(startDate, endDate string) (int, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return 0, err
	}

	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return 0, err
	}

	nights := int(end.Sub(start).Hours() / 24)
	if nights < 0 {
		nights = -nights
	}

	return nights, nil
}

func responseOK(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, UpdateResponse{
		Response: response.OK("Booking updated successfully"),
	})
}
