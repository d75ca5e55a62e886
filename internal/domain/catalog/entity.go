// internal/domain/catalog/entity.go
package catalog

// Product represents the product entity. Prices are stored as integers in
// the smallest currency unit (cents).
type Product struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Category string `json:"category"`
	Image    string `json:"image"`
}
