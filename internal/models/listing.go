package models

// Listing is a normalized hotel search result. PriceAmount is nil when the
// upstream directory has no rate information for the property.
type Listing struct {
	Name          string `json:"name"`
	Accommodation string `json:"accommodation"`
	Rating        string `json:"rating"`
	ReviewCount   int    `json:"reviewCount"`
	ReviewLabel   string `json:"reviewLabel"`
	Price         string `json:"price"`
	PriceAmount   *int   `json:"priceAmount"`
	Image         string `json:"image"`
	URL           string `json:"url"`
}
