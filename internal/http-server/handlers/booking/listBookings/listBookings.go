package listBookings

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"taratrip/internal/lib/api/response"
	"taratrip/internal/lib/logger/sl"
	"taratrip/internal/models"
)

type BookingsResponse struct {
	Bookings []models.Booking `json:"bookings"`
	Count    int              `json:"count"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingLister
type BookingLister interface {
	ListBookings(userID string) ([]models.Booking, error)
}

func New(log *slog.Logger, bookings BookingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.listBookings.New"

		log = log.With(slog.String("op", op))

		userID := r.URL.Query().Get("userId")
		if userID == "" {
			log.Error("user id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("user id is required"))
			return
		}

		log = log.With(slog.String("user_id", userID))

		list, err := bookings.ListBookings(userID)
		if err != nil {
			log.Error("failed to fetch bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to fetch bookings"))
			return
		}

		log.Info("bookings retrieved", slog.Int("count", len(list)))

		responseOK(w, r, list)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, list []models.Booking) {
	if list == nil {
		list = []models.Booking{}
	}

	render.JSON(w, r, BookingsResponse{
		Bookings: list,
		Count:    len(list),
	})
}
