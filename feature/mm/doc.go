// Package mm implements the Miniature Market price source.
//
// Product pages come from a Magento storefront:
//
//	http://www.miniaturemarket.com/catalog/product/view/id/<id>
//
// The store answers unknown products with its CMS 404 page (body class
// cms-no-route), which Parse reports as NotFound. The price is the special price
// when one is shown, else the regular price; the struck-through old price becomes
// MSRP.
//
// # HTTP Endpoints
//
//   - GET /external/mmdata?mmid=&source=mm|db|hybrid&sync=n|y
//   - PUT, POST, DELETE /external/mmdata
package mm
