package clock

import (
	"fmt"
	"time"
)

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

const dateLayout = "2006-01-02"

// LocalDate returns the calendar date of t in the fixed zone offset from UTC.
// Both the catalog's daily stats and the ledger's date stamp go through here.
func LocalDate(t time.Time, offset time.Duration) string {
	return t.In(time.FixedZone("", int(offset/time.Second))).Format(dateLayout)
}

// ParseOffset accepts "+09:00", "-05:30", "Z" or a Go duration such as "9h".
func ParseOffset(raw string) (time.Duration, error) {
	switch raw {
	case "", "Z", "z", "UTC":
		return 0, nil
	}
	if raw[0] == '+' || raw[0] == '-' {
		if t, err := time.Parse("-07:00", raw); err == nil {
			_, secs := t.Zone()
			return time.Duration(secs) * time.Second, nil
		}
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid utc offset %q", raw)
	}
	return d, nil
}
