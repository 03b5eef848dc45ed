package mm

import (
	"game-catalog/core/fetch"
	"game-catalog/core/pipeline"
	"game-catalog/feature/mm/models"
)

// Name identifies the Miniature Market source.
const Name = "mm"

// Template returns the Miniature Market URL template. One identifier per request.
func Template(pattern string) fetch.Template {
	return fetch.Template{Pattern: pattern, Marker: fetch.DefaultMarker}
}

// NewSource wires the Miniature Market fetcher, parser and merge table. doer may be nil.
func NewSource(cfg fetch.Config, doer fetch.Doer) pipeline.Source[models.Price] {
	opts := cfg.Options(cfg.MMRate, "text/html")
	opts.Doer = doer
	return pipeline.Source[models.Price]{
		Name:    Name,
		Fetcher: fetch.NewClient(Template(cfg.MMURL), opts),
		Parse:   Parse,
		Table:   Table(),
	}
}
