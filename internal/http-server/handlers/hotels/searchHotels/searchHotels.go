package searchHotels

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"taratrip/internal/hotels"
	"taratrip/internal/lib/api/response"
	"taratrip/internal/lib/logger/sl"
	"taratrip/internal/models"
)

type SearchResponse struct {
	Location string           `json:"location"`
	Count    int              `json:"count"`
	Hotels   []models.Listing `json:"hotels"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=HotelSearcher
type HotelSearcher interface {
	Search(ctx context.Context, query string) (hotels.SearchResult, error)
}

func New(log *slog.Logger, searcher HotelSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.hotels.searchHotels.New"

		log = log.With(slog.String("op", op))

		query := r.URL.Query().Get("location")

		result, err := searcher.Search(r.Context(), query)
		if err != nil {
			log.Error("failed to fetch hotels", sl.Err(err))

			var upstreamErr *hotels.UpstreamError
			if errors.As(err, &upstreamErr) {
				render.Status(r, http.StatusBadGateway)
				render.JSON(w, r, response.Error("hotel search is temporarily unavailable"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to fetch hotels"))
			return
		}

		log.Info("hotels retrieved",
			slog.String("location", result.Location),
			slog.Int("count", len(result.Hotels)),
		)

		responseOK(w, r, result)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, result hotels.SearchResult) {
	list := result.Hotels
	if list == nil {
		list = []models.Listing{}
	}

	render.JSON(w, r, SearchResponse{
		Location: result.Location,
		Count:    len(list),
		Hotels:   list,
	})
}
