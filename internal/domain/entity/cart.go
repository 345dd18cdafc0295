package entity

// CartItem is a single line in a cart. UnitPrice returns the effective
// price, preferring the sale price when one is set.
type CartItem struct {
	ID            int64    `json:"cart_item_id"`
	ProductID     int64    `json:"product_id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	SalePrice     *float64 `json:"sale_price,omitempty"`
	ImageURL      string   `json:"image_url,omitempty"`
	StoreName     string   `json:"store_name,omitempty"`
	Quantity      int      `json:"quantity"`
	StockQuantity int      `json:"stock_quantity"`
	ItemTotal     float64  `json:"item_total"`
}

// UnitPrice is the price a single unit actually sells for.
func (i CartItem) UnitPrice() float64 {
	if i.SalePrice != nil {
		return *i.SalePrice
	}

	return i.Price
}

// ComputeTotal recomputes ItemTotal from the quantity and unit price.
func (i *CartItem) ComputeTotal() {
	i.ItemTotal = float64(i.Quantity) * i.UnitPrice()
}

// Cart is a read-mostly projection of the server-side cart. It is always
// recomputed from its items after every mutation, never patched in place.
type Cart struct {
	Items       []CartItem `json:"items"`
	TotalItems  int        `json:"total_items"`
	TotalAmount float64    `json:"total_amount"`
}

// EmptyCart returns a cart with no items. Used as the soft-fail fallback
// when a cart read fails.
func EmptyCart() *Cart {
	return &Cart{Items: []CartItem{}}
}

// Recompute derives TotalItems and TotalAmount from the items.
func (c *Cart) Recompute() {
	c.TotalItems = 0
	c.TotalAmount = 0
	for idx := range c.Items {
		c.Items[idx].ComputeTotal()
		c.TotalItems += c.Items[idx].Quantity
		c.TotalAmount += c.Items[idx].ItemTotal
	}
}
