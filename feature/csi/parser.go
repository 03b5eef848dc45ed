package csi

import (
	"bytes"
	"strings"

	"game-catalog/core/errs"
	"game-catalog/core/utils"
	"game-catalog/feature/csi/models"

	"github.com/PuerkitoBio/goquery"
)

const productSelector = `[itemtype$="schema.org/Product"]`

// Parse converts a CoolStuffInc product page into a Price for the given identifier.
// The page does not print its own identifier, so the caller's id is the record key.
func Parse(id int64, raw []byte) (*models.Price, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, errs.Wrap(errs.Malformed, err, "csiid %d: the product page is not valid HTML", id)
	}

	product := doc.Find(productSelector).First()
	if product.Length() == 0 {
		return nil, errs.New(errs.NotFound, "csiid %d: the page holds no product", id)
	}
	product.Find("script, style, noscript").Remove()

	rec := &models.Price{
		CSIID: id,
		Title: utils.AttrOrText(product.Find(`[itemprop="name"]`), "content"),
		SKU:   utils.AttrOrText(product.Find(`[itemprop="sku"]`), "content"),
	}
	if rec.Title == "" {
		rec.Title = utils.MetaContent(doc, "og:title")
	}
	if rec.Title == "" {
		return nil, errs.New(errs.Malformed, "csiid %d: the product has no title", id)
	}

	rec.Price, err = utils.ParsePrice(utils.AttrOrText(product.Find(`[itemprop="price"]`), "content"))
	if err != nil {
		return nil, errs.Wrap(errs.Malformed, err, "csiid %d: price", id)
	}
	rec.MSRP, err = utils.ParsePrice(unlabel(utils.SelectionText(product.Find(".msrp"))))
	if err != nil {
		return nil, errs.Wrap(errs.Malformed, err, "csiid %d: msrp", id)
	}

	rec.Availability = availability(utils.AttrOrText(product.Find(`[itemprop="availability"]`), "href", "content"))
	rec.ImageURL = utils.AttrOrText(product.Find(`[itemprop="image"]`), "src", "content", "href")
	if rec.ImageURL == "" {
		rec.ImageURL = utils.MetaContent(doc, "og:image")
	}

	return rec, nil
}

// availability reduces a schema.org URL such as http://schema.org/InStock to its last segment.
func availability(v string) string {
	if i := strings.LastIndex(v, "/"); i >= 0 && strings.Contains(v, "schema.org") {
		return v[i+1:]
	}
	return v
}

// unlabel drops a leading label such as "MSRP:".
func unlabel(v string) string {
	if i := strings.LastIndex(v, ":"); i >= 0 {
		return v[i+1:]
	}
	return v
}
