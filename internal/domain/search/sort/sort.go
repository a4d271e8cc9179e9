package sort

// Order is the product search sort order.
type Order string

// Sort order constants.
const (
	// Relevance is the upstream default and is omitted from the query string.
	Relevance Order = "relevance"
	PriceLow  Order = "price_low"
	PriceHigh Order = "price_high"
	Rating    Order = "rating"
	Newest    Order = "newest"
)

// IsValid checks if the order is one of the supported values.
func (o Order) IsValid() bool {
	return o == Relevance || o == PriceLow || o == PriceHigh || o == Rating || o == Newest
}
