package persistence

import (
	"context"

	"github.com/opalessence/backend/internal/domain/catalog"
	"github.com/opalessence/backend/internal/domain/identity"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seed loads the demo catalog and demo account into an empty store.
// It is a no-op when products already exist, so restarts against a
// durable database do not duplicate data.
func Seed(ctx context.Context, db *gorm.DB, logger *zap.Logger) error {
	products := NewGormProductRepository(db)
	users := NewGormUserRepository(db)

	existing, err := products.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, p := range demoProducts() {
		if err := products.Save(ctx, p); err != nil {
			return err
		}
	}

	demo, err := identity.NewUser("john@example.com", "demo123", "John", "Smith")
	if err != nil {
		return err
	}
	if err := demo.VerifyEmail(demo.VerificationToken); err != nil {
		return err
	}
	if err := users.Save(ctx, demo); err != nil {
		return err
	}

	logger.Info("seeded demo data",
		zap.Int("products", len(demoProducts())),
		zap.String("demo_user", demo.Email))
	return nil
}

func demoProducts() []*catalog.Product {
	return []*catalog.Product{
		catalog.NewProduct("Ethiopian Opal Pendant", "Fire opal pendant on a sterling silver chain", decimal.NewFromInt(89), "pendants", "/images/opal-pendant.jpg"),
		catalog.NewProduct("Australian Opal Ring", "Solid white opal in a 14k gold band", decimal.NewFromInt(245), "rings", "/images/opal-ring.jpg"),
		catalog.NewProduct("Opal Stud Earrings", "Matched pair of crystal opal studs", decimal.NewFromInt(65), "earrings", "/images/opal-studs.jpg"),
		catalog.NewProduct("Boulder Opal Bracelet", "Queensland boulder opal on a leather band", decimal.NewFromInt(120), "bracelets", "/images/opal-bracelet.jpg"),
		catalog.NewProduct("Opal Drop Necklace", "Teardrop welo opal with silver accents", decimal.NewFromInt(150), "necklaces", "/images/opal-necklace.jpg"),
		catalog.NewProduct("Raw Opal Specimen", "Uncut Ethiopian opal for collectors", decimal.NewFromInt(40), "specimens", "/images/opal-raw.jpg"),
	}
}
