package entity

// Product is a sellable item owned by a store. SalePrice, when set, must be
// below Price; that rule is enforced before any write leaves this service.
type Product struct {
	ID                  int64    `json:"product_id"`
	StoreID             int64    `json:"store_id"`
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	Price               float64  `json:"price"`
	SalePrice           *float64 `json:"sale_price,omitempty"`
	CategoryID          int64    `json:"category_id"`
	StockQuantity       int      `json:"stock_quantity"`
	IsFeatured          bool     `json:"is_featured"`
	IsActive            bool     `json:"is_active"`
	ImageURL            string   `json:"image_url,omitempty"`
	LoyaltyPointsEarned int      `json:"loyalty_points_earned"`
}

// EffectivePrice is the price a unit currently sells for.
func (p Product) EffectivePrice() float64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}

	return p.Price
}

// ProductStats is the aggregate view rendered on the supplier dashboard.
type ProductStats struct {
	TotalProducts    int `json:"total_products"`
	ActiveProducts   int `json:"active_products"`
	FeaturedProducts int `json:"featured_products"`
	OutOfStock       int `json:"out_of_stock"`
}
