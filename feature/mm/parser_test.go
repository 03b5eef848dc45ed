package mm

import (
	"testing"

	"game-catalog/core/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productHTML = `<!DOCTYPE html>
<html>
<head><meta property="og:image" content="https://www.miniaturemarket.com/media/og.jpg"></head>
<body class="catalog-product-view">
  <div class="header"><div class="product-name"><h1>Header Promo</h1></div></div>
  <div class="product-view">
    <div class="product-img-box">
      <img id="image" src="https://www.miniaturemarket.com/media/catalog/abyss.jpg" alt="Abyss">
    </div>
    <div class="product-shop">
      <div class="product-name"><h1>Abyss</h1></div>
      <div class="sku">SKU: BBE-ABY01</div>
      <p class="availability in-stock">Availability: <span>In stock</span></p>
      <div class="price-box">
        <p class="old-price"><span class="price-label">Regular Price:</span><span class="price">$49.99</span></p>
        <p class="special-price"><span class="price-label">Special Price</span><span class="price">$29.99</span></p>
      </div>
      <script>var optionsPrice = new Product.OptionsPrice({"productPrice": "x"});</script>
    </div>
  </div>
</body>
</html>`

func TestParse(t *testing.T) {
	rec, err := Parse(6003, []byte(productHTML))
	require.NoError(t, err)

	assert.Equal(t, int64(6003), rec.MMID)
	assert.Equal(t, "Abyss", rec.Title)
	assert.Equal(t, "BBE-ABY01", rec.SKU)
	require.NotNil(t, rec.Price)
	assert.True(t, decimal.RequireFromString("29.99").Equal(*rec.Price))
	require.NotNil(t, rec.MSRP)
	assert.True(t, decimal.RequireFromString("49.99").Equal(*rec.MSRP))
	assert.Equal(t, "In stock", rec.Availability)
	assert.Equal(t, "https://www.miniaturemarket.com/media/catalog/abyss.jpg", rec.ImageURL)
}

func TestParse_RegularPriceOnly(t *testing.T) {
	page := `<html><body><div class="product-view">
  <div class="product-name"><h1>Kemet</h1></div>
  <div class="price-box"><span class="regular-price"><span class="price">$1,049.95</span></span></div>
</div></body></html>`

	rec, err := Parse(1, []byte(page))
	require.NoError(t, err)
	require.NotNil(t, rec.Price)
	assert.True(t, decimal.RequireFromString("1049.95").Equal(*rec.Price))
	assert.Nil(t, rec.MSRP)
	assert.Empty(t, rec.Availability)
}

func TestParse_CallForPrice(t *testing.T) {
	page := `<html><head><meta property="og:image" content="https://img.example/og.jpg"></head>
<body><div class="product-view">
  <div class="product-name"><h1>Gloomhaven</h1></div>
  <div class="price-box"><span class="regular-price"><span class="price">Call for price</span></span></div>
  <p class="availability out-of-stock"><span>Out of stock</span></p>
</div></body></html>`

	rec, err := Parse(2, []byte(page))
	require.NoError(t, err)
	assert.Nil(t, rec.Price)
	assert.Equal(t, "Out of stock", rec.Availability)
	assert.Equal(t, "https://img.example/og.jpg", rec.ImageURL)
}

func TestParse_NotFound(t *testing.T) {
	tests := []struct {
		name string
		page string
	}{
		{"CMSNoRoute", `<html><body class="cms-index-noroute cms-no-route"><div class="product-view"></div></body></html>`},
		{"NoProductView", `<html><body class="catalog-category-view"><h1>Board Games</h1></body></html>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(9, []byte(tt.page))
			assert.True(t, errs.Is(err, errs.NotFound), "got %v", err)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		page string
	}{
		{"NoTitle", `<html><body><div class="product-view"><div class="price-box"><span class="price">$5</span></div></div></body></html>`},
		{"BadPrice", `<html><body><div class="product-view"><div class="product-name"><h1>X</h1></div><div class="price-box"><span class="regular-price"><span class="price">$5.0.0</span></span></div></div></body></html>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(1, []byte(tt.page))
			assert.True(t, errs.Is(err, errs.Malformed), "got %v", err)
		})
	}
}

func TestTable_IdenticalIsUnchanged(t *testing.T) {
	cached, err := Parse(6003, []byte(productHTML))
	require.NoError(t, err)
	cached.Title = "ABYSS"
	remote, err := Parse(6003, []byte(productHTML))
	require.NoError(t, err)

	res, err := Table().Merge(remote, cached)
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Equal(t, "ABYSS", res.Record.Title)
}
