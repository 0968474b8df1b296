package confirmation

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"taratrip/internal/lib/logger/sl"
	"taratrip/internal/models"
)

//go:embed thankyou.html
var templateFS embed.FS

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingRecorder
type BookingRecorder interface {
	CreateBooking(booking models.NewBooking) error
}

type pageData struct {
	Found       bool
	ErrorNotice string
	Hotel       string
	StartDate   string
	EndDate     string
	Guests      int
	Nights      int
	Total       string
}

// New handles the payment success redirect: it reconstructs the booking from
// the query string, persists it, and renders the confirmation page. A failed
// save is reported on the page but does not block the visitor.
func New(log *slog.Logger, bookings BookingRecorder) http.HandlerFunc {
	tmpl := template.Must(template.ParseFS(templateFS, "thankyou.html"))
	printer := message.NewPrinter(language.English)

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.confirmation.New"

		log = log.With(slog.String("op", op))

		q := r.URL.Query()

		hotel := q.Get("hotel")
		startDate := q.Get("start_date")
		endDate := q.Get("end_date")
		guests, _ := strconv.Atoi(q.Get("guests"))
		nights, _ := strconv.Atoi(q.Get("nights"))
		total, _ := strconv.ParseFloat(q.Get("total"), 64)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		if hotel == "" || startDate == "" || endDate == "" {
			log.Error("missing booking information in redirect")

			if err := tmpl.Execute(w, pageData{Found: false}); err != nil {
				log.Error("failed to render confirmation page", sl.Err(err))
			}
			return
		}

		data := pageData{
			Found:     true,
			Hotel:     hotel,
			StartDate: startDate,
			EndDate:   endDate,
			Guests:    guests,
			Nights:    nights,
			Total:     printer.Sprintf("%.2f", total),
		}

		err := bookings.CreateBooking(models.NewBooking{
			UserID:      q.Get("user_id"),
			Hotel:       hotel,
			StartDate:   startDate,
			EndDate:     endDate,
			Guests:      guests,
			Nights:      nights,
			TotalAmount: total,
			Image:       q.Get("image"),
		})
		if err != nil {
			log.Error("failed to save booking", sl.Err(err))
			data.ErrorNotice = "We could not save your booking details. Please contact support with your payment reference."
		} else {
			log.Info("booking recorded", slog.String("hotel", hotel))
		}

		if err := tmpl.Execute(w, data); err != nil {
			log.Error("failed to render confirmation page", sl.Err(err))
		}
	}
}
