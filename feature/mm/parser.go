package mm

import (
	"bytes"
	"strings"

	"game-catalog/core/errs"
	"game-catalog/core/utils"
	"game-catalog/feature/mm/models"

	"github.com/PuerkitoBio/goquery"
)

// Parse converts a Miniature Market product page into a Price for the given identifier.
func Parse(id int64, raw []byte) (*models.Price, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, errs.Wrap(errs.Malformed, err, "mmid %d: the product page is not valid HTML", id)
	}

	if doc.Find("body").HasClass("cms-no-route") {
		return nil, errs.New(errs.NotFound, "mmid %d: the store answered with its 404 page", id)
	}
	view := doc.Find(".product-view").First()
	if view.Length() == 0 {
		return nil, errs.New(errs.NotFound, "mmid %d: the page holds no product", id)
	}
	view.Find("script, style, noscript").Remove()

	rec := &models.Price{
		MMID:         id,
		Title:        utils.SelectionText(view.Find(".product-name h1")),
		SKU:          sku(view),
		Availability: availability(view),
		ImageURL:     utils.AttrOrText(view.Find("#image, .product-image img"), "src", "data-src"),
	}
	if rec.Title == "" {
		rec.Title = utils.SelectionText(view.Find(".product-name"))
	}
	if rec.Title == "" {
		return nil, errs.New(errs.Malformed, "mmid %d: the product has no title", id)
	}
	if rec.ImageURL == "" {
		rec.ImageURL = utils.MetaContent(doc, "og:image")
	}

	box := view.Find(".price-box").First()
	price := box.Find(".special-price .price")
	if price.Length() == 0 {
		price = box.Find(".regular-price .price")
	}
	if price.Length() == 0 {
		price = box.Find(".price").Not(".old-price .price")
	}
	rec.Price, err = utils.ParsePrice(utils.SelectionText(price))
	if err != nil {
		return nil, errs.Wrap(errs.Malformed, err, "mmid %d: price", id)
	}
	rec.MSRP, err = utils.ParsePrice(utils.SelectionText(box.Find(".old-price .price")))
	if err != nil {
		return nil, errs.Wrap(errs.Malformed, err, "mmid %d: old price", id)
	}

	return rec, nil
}

func sku(view *goquery.Selection) string {
	v := utils.AttrOrText(view.Find(`[itemprop="sku"], .sku`), "content")
	if i := strings.Index(v, ":"); i >= 0 {
		v = strings.TrimSpace(v[i+1:])
	}
	return v
}

func availability(view *goquery.Selection) string {
	v := utils.SelectionText(view.Find(".availability span"))
	if v == "" {
		v = utils.SelectionText(view.Find(".availability"))
	}
	return strings.TrimSpace(strings.TrimPrefix(v, "Availability:"))
}
