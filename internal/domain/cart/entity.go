// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// Line represents a cart line: one product plus its quantity. The product
// is copied by value when the line is created; later catalog edits do not
// reach into an existing line.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	AddedAt  time.Time       `json:"added_at"`
}

// LineTotal returns the line subtotal (unit price times quantity)
func (l Line) LineTotal() int64 {
	return l.Product.Price * int64(l.Quantity)
}

// Event is the transient attention signal fired once per add-to-cart,
// intended for presentation layers (e.g. a cart icon bounce). It carries
// no state contract beyond "fired once per call".
type Event struct {
	ProductID uint      `json:"product_id"`
	Name      string    `json:"name"`
	At        time.Time `json:"at"`
}
