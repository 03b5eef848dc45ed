// Package csi implements the CoolStuffInc price source.
//
// Product pages are scraped with goquery from their schema.org Product markup:
//
//	http://www.coolstuffinc.com/p/<id>
//
// A page without a Product container means the identifier is unknown (NotFound).
// Prices such as "$29.99" are parsed with shopspring/decimal; text without digits,
// e.g. "Contact Us", leaves the price absent.
//
// # HTTP Endpoints
//
//   - GET /external/csidata?csiid=&source=csi|db|hybrid&sync=n|y
//   - PUT, POST, DELETE /external/csidata
package csi
