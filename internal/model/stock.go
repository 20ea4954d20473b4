package model

// Stock represents a single portfolio holding.
//
// The JSON keys (including the two containing spaces) are the wire format
// shared by both services and must stay stable.
type Stock struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	PurchasePrice float64 `json:"purchase price"`
	Shares        int     `json:"shares"`
	PurchaseDate  string  `json:"purchase date"`
}

// Quote is the normalized result of a price lookup. Ephemeral, never persisted.
type Quote struct {
	Symbol string
	Price  float64
}

// FilterCriteria selects a subset of a portfolio by share count.
// Both bounds are exclusive; when both are present and equal the filter
// matches holdings with exactly that share count.
type FilterCriteria struct {
	GreaterThan *int
	LessThan    *int
}
