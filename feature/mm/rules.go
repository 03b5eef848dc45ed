package mm

import (
	"game-catalog/core/reconcile"
	"game-catalog/feature/mm/models"

	"github.com/shopspring/decimal"
)

// Table returns the merge precedence for Miniature Market prices.
func Table() *reconcile.Table[models.Price] {
	return reconcile.NewTable(func(p *models.Price) int64 { return p.MMID },
		reconcile.Name("title", func(p *models.Price) *string { return &p.Title }),
		reconcile.Name("availability", func(p *models.Price) *string { return &p.Availability }),
		reconcile.Value("price", func(p *models.Price) **decimal.Decimal { return &p.Price }, decimal.Decimal.Equal),
		reconcile.Value("msrp", func(p *models.Price) **decimal.Decimal { return &p.MSRP }, decimal.Decimal.Equal),
		reconcile.Text("sku", func(p *models.Price) *string { return &p.SKU }),
		reconcile.Text("imageURL", func(p *models.Price) *string { return &p.ImageURL }),
		reconcile.Curated[models.Price]("reviewState"),
	)
}
