// internal/infrastructure/seed/seed.go
package seed

import (
	"fmt"
	"log"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/coupon"
)

// InitialData populates the in-memory stores with development data so the
// storefront is browsable right after startup.
func InitialData(catalogSvc *catalog.Service, couponSvc *coupon.Service) error {
	log.Println("🌱 Seeding initial data...")

	seedProducts(catalogSvc)

	if err := seedCoupons(couponSvc); err != nil {
		return fmt.Errorf("failed to seed coupons: %w", err)
	}

	log.Println("✅ Initial data seeded successfully")
	return nil
}

// seedProducts creates a small demo catalog
func seedProducts(svc *catalog.Service) {
	log.Println("🏷️ Seeding products...")

	products := []catalog.Product{
		{
			Name:     "Wireless Headphones",
			Price:    12999,
			Category: "Electronics",
			Image:    "/images/wireless-headphones.jpg",
		},
		{
			Name:     "Mechanical Keyboard",
			Price:    8999,
			Category: "Electronics",
			Image:    "/images/mechanical-keyboard.jpg",
		},
		{
			Name:     "Cotton T-Shirt",
			Price:    1999,
			Category: "Clothing",
			Image:    "/images/cotton-tshirt.jpg",
		},
		{
			Name:     "Denim Jacket",
			Price:    4500,
			Category: "Clothing",
			Image:    "/images/denim-jacket.jpg",
		},
		{
			Name:     "The Pragmatic Programmer",
			Price:    3499,
			Category: "Books",
			Image:    "/images/pragmatic-programmer.jpg",
		},
		{
			Name:     "Ceramic Plant Pot",
			Price:    1250,
			Category: "Home & Garden",
			Image:    "/images/ceramic-plant-pot.jpg",
		},
	}

	for _, p := range products {
		svc.Insert(p)
	}
}

// seedCoupons registers a few demo discount codes
func seedCoupons(svc *coupon.Service) error {
	log.Println("🎟️ Seeding coupons...")

	coupons := []struct {
		code    string
		percent int
	}{
		{"WELCOME10", 10},
		{"SUMMER25", 25},
		{"VIP50", 50},
	}

	for _, c := range coupons {
		if _, err := svc.Register(c.code, c.percent); err != nil {
			return err
		}
	}

	// One inactive code for exercising the validation path
	if _, err := svc.Register("EXPIRED15", 15); err != nil {
		return err
	}
	return svc.SetActive("EXPIRED15", false)
}
