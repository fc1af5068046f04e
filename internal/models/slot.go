package models

// Slot is an offered booking window. Slots are generated on demand and never
// persisted.
type Slot struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}
