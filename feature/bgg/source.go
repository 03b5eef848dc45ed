package bgg

import (
	"game-catalog/core/errs"
	"game-catalog/core/fetch"
	"game-catalog/core/pipeline"
	"game-catalog/feature/bgg/models"
)

// Name identifies the BoardGameGeek source.
const Name = "bgg"

// Template returns the BoardGameGeek URL template. Identifiers are comma-joined.
func Template(pattern string) fetch.Template {
	return fetch.Template{Pattern: pattern, Marker: fetch.DefaultMarker, Batch: true}
}

// NewSource wires the BoardGameGeek fetcher, parsers and merge table. doer may be nil.
func NewSource(cfg fetch.Config, doer fetch.Doer) pipeline.Source[models.Game] {
	opts := cfg.Options(cfg.BGGRate, "text/xml")
	opts.Doer = doer
	return pipeline.Source[models.Game]{
		Name:       Name,
		Fetcher:    fetch.NewClient(Template(cfg.BGGURL), opts),
		Parse:      parseFor,
		ParseBatch: ParseBatch,
		Table:      Table(),
	}
}

// parseFor parses a single-game document and checks it describes the requested game.
func parseFor(id int64, raw []byte) (*models.Game, error) {
	g, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	if g.BGGID != id {
		return nil, errs.New(errs.Malformed, "requested bggid %d but the document describes %d", id, g.BGGID)
	}
	return g, nil
}
