package model

import "time"

// AuditRecord is the metadata of one generation batch. It never holds password text.
type AuditRecord struct {
	ID             int64     `json:"id"`
	Client         string    `json:"client"`
	Length         int       `json:"length"`
	Quantity       int       `json:"quantity"`
	Categories     string    `json:"categories"`
	ExcludeSimilar bool      `json:"exclude_similar"`
	AlphabetSize   int       `json:"alphabet_size"`
	EntropyBits    float64   `json:"entropy_bits"`
	Strength       string    `json:"strength"`
	CreatedAt      time.Time `json:"created_at"`
}
