package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Price is the canonical CoolStuffInc product record.
type Price struct {
	CSIID        int64            `gorm:"column:csi_id;primaryKey;autoIncrement:false" json:"csiid"`
	Title        string           `gorm:"column:title;size:255;not null" json:"title"`
	SKU          string           `gorm:"column:sku;size:64" json:"sku,omitempty"`
	Price        *decimal.Decimal `gorm:"column:price;type:decimal(10,2)" json:"price,omitempty"`
	MSRP         *decimal.Decimal `gorm:"column:msrp;type:decimal(10,2)" json:"msrp,omitempty"`
	Availability string           `gorm:"column:availability;size:64" json:"availability,omitempty"`
	ImageURL     string           `gorm:"column:image_url;size:512" json:"imageURL,omitempty"`
	// ReviewState is maintained by curators and never taken from the source.
	ReviewState string    `gorm:"column:review_state;size:32" json:"reviewState,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"-"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"-"`
}

// TableName overrides the table name.
func (Price) TableName() string {
	return "csi_prices"
}
