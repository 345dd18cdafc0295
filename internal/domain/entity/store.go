package entity

// Store is a supplier-owned storefront. The observed flows allow exactly
// one store per supplier.
type Store struct {
	ID           int64   `json:"store_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	OpeningHours string  `json:"opening_hours"`
	IsActive     bool    `json:"is_active"`
	AvgRating    float64 `json:"avg_rating"`
}
