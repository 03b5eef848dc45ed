package csi

import (
	"game-catalog/core/fetch"
	"game-catalog/core/pipeline"
	"game-catalog/feature/csi/models"
)

// Name identifies the CoolStuffInc source.
const Name = "csi"

// Template returns the CoolStuffInc URL template. One identifier per request.
func Template(pattern string) fetch.Template {
	return fetch.Template{Pattern: pattern, Marker: fetch.DefaultMarker}
}

// NewSource wires the CoolStuffInc fetcher, parser and merge table. doer may be nil.
func NewSource(cfg fetch.Config, doer fetch.Doer) pipeline.Source[models.Price] {
	opts := cfg.Options(cfg.CSIRate, "text/html")
	opts.Doer = doer
	return pipeline.Source[models.Price]{
		Name:    Name,
		Fetcher: fetch.NewClient(Template(cfg.CSIURL), opts),
		Parse:   Parse,
		Table:   Table(),
	}
}
