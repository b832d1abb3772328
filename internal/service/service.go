// Package service holds the business rules of the content API: validation,
// ownership checks, slug generation and keeping the featured index in step
// with article writes. Every method returns *Error on failure.
package service

import (
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultPage     = 1
	DefaultLimit    = 20
	DefaultMaxLimit = 100
	RecentLimit     = 5
	PreviewLimit    = 5
)

// Options are shared by all services. Zero values are replaced with defaults.
type Options struct {
	Now          func() time.Time
	Slugify      Slugger
	MaxPageLimit int
	Logger       *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.Now == nil {
		o.Now = func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) }
	}
	if o.Slugify == nil {
		o.Slugify = SimpleSlug
	}
	if o.MaxPageLimit <= 0 {
		o.MaxPageLimit = DefaultMaxLimit
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
