package entity

// Distribution maps each score 1..5 to the number of ratings holding it.
type Distribution map[int]int

// RatingSummary is derived on demand from a rating set and never persisted.
type RatingSummary struct {
	Count        int          `json:"count"`
	Average      float64      `json:"average"`
	Distribution Distribution `json:"distribution"`
}

// TrendPoint is one calendar month of a store's rating history.
type TrendPoint struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}
