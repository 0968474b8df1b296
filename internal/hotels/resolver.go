package hotels

import (
	"regexp"
	"strings"

	"taratrip/internal/models"
)

// Known destinations and their TripAdvisor geo keys.
var locations = map[string]models.Location{
	"boracay": {Key: "g294260", Label: "Boracay, Philippines"},
	"palawan": {Key: "g294255", Label: "Palawan, Philippines"},
	"manila":  {Key: "g298573", Label: "Manila, Philippines"},
	"cebu":    {Key: "g298460", Label: "Cebu City, Philippines"},
	"bohol":   {Key: "g294259", Label: "Bohol, Philippines"},
	"davao":   {Key: "g298459", Label: "Davao City, Philippines"},
	"siargao": {Key: "g674645", Label: "Siargao Island, Philippines"},
}

const fallbackAlias = "boracay"

var geoKeyRe = regexp.MustCompile(`\bg\d{4,}\b`)

// Resolver maps free-text search queries to directory locations. Resolution
// never fails; unrecognized input resolves to the configured default.
type Resolver struct {
	fallback models.Location
}

func NewResolver(defaultLocation string) *Resolver {
	fallback, ok := locations[strings.ToLower(strings.TrimSpace(defaultLocation))]
	if !ok {
		fallback = locations[fallbackAlias]
	}

	return &Resolver{fallback: fallback}
}

func (r *Resolver) Resolve(query string) models.Location {
	normalized := strings.ToLower(strings.TrimSpace(query))

	if loc, ok := locations[normalized]; ok {
		return loc
	}

	if key := geoKeyRe.FindString(normalized); key != "" {
		return models.Location{Key: key, Label: "Selected destination"}
	}

	return r.fallback
}

// Locations returns a copy of the alias table keyed by search alias.
func Locations() map[string]models.Location {
	out := make(map[string]models.Location, len(locations))
	for alias, loc := range locations {
		out[alias] = loc
	}

	return out
}
