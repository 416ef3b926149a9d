package timeunit

import (
	"fmt"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
)

// Unit is the unit a materialized difftime vector is expressed in.
// The zero value is [Seconds].
type Unit int

const (
	Seconds Unit = iota
	Minutes
	Hours
	Days
	Weeks
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerWeek   = 7 * secondsPerDay
)

func (u Unit) String() string {
	switch u {
	case Seconds:
		return "secs"
	case Minutes:
		return "mins"
	case Hours:
		return "hours"
	case Days:
		return "days"
	case Weeks:
		return "weeks"
	default:
		return fmt.Sprintf("unit(%d)", int(u))
	}
}

// SecondsFactor returns the multiplier that converts seconds into [u].
// Units we don't recognize are treated as seconds.
func (u Unit) SecondsFactor() float64 {
	switch u {
	case Minutes:
		return 1.0 / secondsPerMinute
	case Hours:
		return 1.0 / secondsPerHour
	case Days:
		return 1.0 / secondsPerDay
	case Weeks:
		return 1.0 / secondsPerWeek
	default:
		return 1.0
	}
}

func ParseUnit(value string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "s", "sec", "secs", "second", "seconds":
		return Seconds, nil
	case "min", "mins", "minute", "minutes":
		return Minutes, nil
	case "h", "hour", "hours":
		return Hours, nil
	case "d", "day", "days":
		return Days, nil
	case "w", "week", "weeks":
		return Weeks, nil
	}

	return 0, fmt.Errorf("unsupported time unit: %q", value)
}

// ResolutionFactor returns the multiplier that converts a tick of [resolution] into seconds.
// Unlike [Unit.SecondsFactor] there is no fallback, an unknown resolution is an error.
func ResolutionFactor(resolution arrow.TimeUnit) (float64, error) {
	switch resolution {
	case arrow.Second:
		return 1, nil
	case arrow.Millisecond:
		return 1e-3, nil
	case arrow.Microsecond:
		return 1e-6, nil
	case arrow.Nanosecond:
		return 1e-9, nil
	}

	return 0, fmt.Errorf("unsupported time resolution: %d", int(resolution))
}

// Scale returns the factor that converts values of [resolution] ticks into [unit].
func Scale(resolution arrow.TimeUnit, unit Unit) (float64, error) {
	scale := unit.SecondsFactor()
	resolutionFactor, err := ResolutionFactor(resolution)
	if err != nil {
		return 0, err
	}

	scale *= resolutionFactor
	return scale, nil
}
