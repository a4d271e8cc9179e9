// Package domain holds the catalog models, request values, and error
// taxonomy shared across the service.
package domain

// Product is one item from a product search.
type Product struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Availability string  `json:"availability,omitempty"`
	Rating       float64 `json:"rating,omitempty"`
	Thumbnail    string  `json:"thumbnail,omitempty"`
	CategoryPath string  `json:"category_path,omitempty"`
	URL          string  `json:"url,omitempty"`
}

// ProductPage is one window of product results with the upstream total.
type ProductPage struct {
	Items []Product
	Total int
}

// Store is one physical store from the locator.
type Store struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address,omitempty"`
	City      string  `json:"city,omitempty"`
	State     string  `json:"state,omitempty"`
	Zip       string  `json:"zip,omitempty"`
	Phone     string  `json:"phone,omitempty"`
	Distance  float64 `json:"distance,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// Category is one node of the product taxonomy.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parent_id,omitempty"`
	Path     string `json:"path,omitempty"`
}
