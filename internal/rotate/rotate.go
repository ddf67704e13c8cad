// Package rotate formats strftime-style filename patterns against a
// given time, for capture logs and NMEA export files that should roll
// over on a schedule (hourly, daily) without bespoke date math at every
// call site.
package rotate

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/strftime"
)

// Filename renders pattern (a strftime-style format string, e.g.
// "aod-%Y%m%d-%H%M%S.log") against t.
func Filename(pattern string, t time.Time) (string, error) {
	name, err := strftime.Format(pattern, t)
	if err != nil {
		return "", fmt.Errorf("rotate: format %q: %w", pattern, err)
	}
	return name, nil
}

// Formatter precompiles a strftime pattern for repeated use, avoiding
// re-parsing the pattern on every rotation check.
type Formatter struct {
	f *strftime.Strftime
}

// NewFormatter compiles pattern once for repeated calls to Format.
func NewFormatter(pattern string) (*Formatter, error) {
	f, err := strftime.New(pattern)
	if err != nil {
		return nil, fmt.Errorf("rotate: compile %q: %w", pattern, err)
	}
	return &Formatter{f: f}, nil
}

// Format renders t against the compiled pattern.
func (r *Formatter) Format(t time.Time) string {
	return r.f.FormatString(t)
}
