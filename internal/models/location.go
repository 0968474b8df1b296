package models

// Location is a destination the upstream hotel directory understands.
type Location struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}
