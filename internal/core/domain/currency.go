package domain

// Currency represents a supported currency in the domain.
type Currency struct {
	ID   int64  `json:"id"`   // Store assigned
	Abb  string `json:"abb"`  // 3-letter uppercase code, unique (e.g., "USD")
	Name string `json:"name"` // e.g., "US Dollar"
}
