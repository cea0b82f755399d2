// Package clock provides the reference-zone time source.
package clock

import (
	"time"

	"clinica/config"
	"clinica/internal/domain/service"

	"github.com/pkg/errors"
)

// zoneClock implements service.Clock over a fixed IANA zone.
type zoneClock struct {
	loc *time.Location
}

// New loads the configured reference zone and returns a Clock pinned to it.
func New(cfg *config.Config) (service.Clock, error) {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load time zone %s", cfg.TimeZone)
	}

	return &zoneClock{loc: loc}, nil
}

func (c *zoneClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *zoneClock) Location() *time.Location {
	return c.loc
}
