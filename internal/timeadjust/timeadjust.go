package timeadjust

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/nickwells/english.mod/english"
	"github.com/nickwells/tempus.mod/tempus"
)

const daysPerWeek = 7

// unitNames are the valid unit suffixes in order of increasing size
var unitNames = []string{"s", "m", "h", "d", "w"}

// secondsPerUnit gives the number of seconds that one of each unit
// represents. A day is always taken to be 24 hours and a week 7 days;
// this is exact in any timezone with no daylight-saving changes.
var secondsPerUnit = map[string]int64{
	"s": 1,
	"m": tempus.SecondsPerMinute,
	"h": tempus.SecondsPerHour,
	"d": tempus.SecondsPerDay,
	"w": daysPerWeek * tempus.SecondsPerDay,
}

// UnitList returns the valid unit suffixes as a descriptive list suitable
// for use in messages
func UnitList() string {
	return english.Join(unitNames, ", ", " or ")
}

// Adjustment is a relative shift to a time, held as a whole number of
// seconds. It may be negative.
type Adjustment int64

// Apply returns the time shifted by the adjustment. The shift is applied
// to the number of seconds since the epoch; the location of the time is
// preserved.
func (a Adjustment) Apply(t time.Time) time.Time {
	return time.Unix(t.Unix()+int64(a), 0).In(t.Location())
}

// Parse parses a relative time adjustment. This is a whole number with a
// unit suffix and an optional leading sign, such as "-30s" or "2d".
//
// After any sign has been removed the remaining characters are split into
// a run of decimal digits giving the magnitude and a run of everything
// else giving the unit; the two runs are collected independently. The
// valid units are those reported by UnitList.
func Parse(s string) (Adjustment, error) {
	if s == "" {
		return 0, errors.New("empty adjustment string")
	}

	rest := s
	negate := false

	switch rest[0] {
	case '-':
		negate = true
		rest = rest[1:]
	case '+':
		rest = rest[1:]
	}

	var digits, unit string

	for _, r := range rest {
		if r >= '0' && r <= '9' {
			digits += string(r)
		} else {
			unit += string(r)
		}
	}

	if digits == "" {
		return 0, fmt.Errorf("missing numeric part: %q", s)
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %q", digits)
	}

	if unit == "" {
		return 0, fmt.Errorf("missing time unit: %q (the unit must be %s)",
			s, UnitList())
	}

	spu, ok := secondsPerUnit[unit]
	if !ok {
		return 0, fmt.Errorf("unknown time unit: %q (the unit must be %s)",
			unit, UnitList())
	}

	if n > math.MaxInt64/spu {
		return 0, fmt.Errorf("invalid number: %q", digits)
	}

	secs := n * spu
	if negate {
		secs = -secs
	}

	return Adjustment(secs), nil
}
