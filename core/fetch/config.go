package fetch

import (
	"fmt"
	"strings"
	"time"
)

// Config holds the outbound settings shared by every source.
type Config struct {
	// TimeoutSeconds bounds one fetch, from dial to the last body byte.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"game-catalog/1.0"`
	// Archive stores every fetched document in object storage.
	Archive bool `mapstructure:"archive" default:"false"`
	// BGGURL is the BoardGameGeek game-data template.
	BGGURL string `mapstructure:"bgg_url" default:"http://www.boardgamegeek.com/xmlapi/boardgame/<id>?stats=1"`
	// CSIURL is the CoolStuffInc product page template.
	CSIURL string `mapstructure:"csi_url" default:"http://www.coolstuffinc.com/p/<id>"`
	// MMURL is the Miniature Market product page template.
	MMURL string `mapstructure:"mm_url" default:"http://www.miniaturemarket.com/catalog/product/view/id/<id>"`
	// BGGRate limits BoardGameGeek requests per second; zero disables the limit.
	BGGRate float64 `mapstructure:"bgg_rate" default:"2"`
	// CSIRate limits CoolStuffInc requests per second; zero disables the limit.
	CSIRate float64 `mapstructure:"csi_rate" default:"1"`
	// MMRate limits Miniature Market requests per second; zero disables the limit.
	MMRate float64 `mapstructure:"mm_rate" default:"1"`
	// MaxBatch caps the identifiers of one batch request.
	MaxBatch int `mapstructure:"max_batch" default:"100"`
	// MaxBodyBytes caps the size of one fetched document.
	MaxBodyBytes int64 `mapstructure:"max_body_bytes" default:"8388608"`
}

// Timeout returns the fetch timeout, 30 seconds when unset.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Options builds client options for one source.
func (c Config) Options(rate float64, accept string) Options {
	return Options{
		Timeout:       c.Timeout(),
		UserAgent:     c.UserAgent,
		Accept:        accept,
		RatePerSecond: rate,
		MaxBodyBytes:  c.MaxBodyBytes,
	}
}

// Validate checks that every URL template carries the identifier marker, that no rate
// is negative and that the batch cap is positive.
func (c Config) Validate() error {
	for name, pattern := range map[string]string{"bgg_url": c.BGGURL, "csi_url": c.CSIURL, "mm_url": c.MMURL} {
		if !strings.Contains(pattern, DefaultMarker) {
			return fmt.Errorf("sources.%s %q does not contain %s", name, pattern, DefaultMarker)
		}
	}
	for name, rate := range map[string]float64{"bgg_rate": c.BGGRate, "csi_rate": c.CSIRate, "mm_rate": c.MMRate} {
		if rate < 0 {
			return fmt.Errorf("sources.%s must not be negative", name)
		}
	}
	if c.MaxBatch < 1 {
		return fmt.Errorf("sources.max_batch must be at least 1, got %d", c.MaxBatch)
	}
	return nil
}
