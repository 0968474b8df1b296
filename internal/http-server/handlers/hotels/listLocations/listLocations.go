package listLocations

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"taratrip/internal/hotels"
)

// New serves the fixed destination alias table so clients can offer
// suggestions without hardcoding it.
func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.hotels.listLocations.New"

		log.With(slog.String("op", op)).Info("locations listed")

		render.JSON(w, r, hotels.Locations())
	}
}
