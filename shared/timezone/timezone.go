// Package timezone reads and renders upstream timestamps in the configured APP_TIMEZONE.
// The location is loaded on first use; unknown names fall back to UTC.
package timezone

import (
	"sync"
	"time"

	"cruisedesk/config"

	"github.com/rs/zerolog/log"
)

var (
	once     sync.Once
	location = time.UTC
	mu       sync.RWMutex
)

func load() {
	once.Do(func() {
		name := config.Get().App.Timezone
		if name == "" {
			return
		}

		loc, err := time.LoadLocation(name)
		if err != nil {
			log.Error().Err(err).Str("timezone", name).Msg("Unknown timezone, timestamps stay in UTC")

			return
		}

		set(loc)
	})
}

// Use switches the application location and overrides APP_TIMEZONE.
// Names must be IANA zone names such as "Asia/Jakarta".
func Use(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return err //nolint:wrapcheck
	}

	once.Do(func() {})
	set(loc)

	return nil
}

func set(loc *time.Location) {
	mu.Lock()
	location = loc
	mu.Unlock()
}

func Location() *time.Location {
	load()

	mu.RLock()
	defer mu.RUnlock()

	return location
}

func Now() time.Time {
	return time.Now().In(Location())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(Location())
}

// Parse reads layouts without a zone in the application location.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, Location()) //nolint:wrapcheck
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
