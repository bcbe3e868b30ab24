package datefmt

import (
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// DfltPattern is the pattern used when no format has been given; it shows
// just the date
const DfltPattern = "%Y-%m-%d"

const keywordJPWD = "jpwd"

// patterns maps each format keyword to its strftime pattern
var patterns = map[string]string{
	"default":   DfltPattern,
	"iso":       "%Y-%m-%dT%H:%M:%S%z",
	"jp":        "%Y年%m月%d日",
	keywordJPWD: "%Y年%m月%d日(%w)",
	"jphm":      "%Y年%m月%d日 %H時%M分",
	"jphms":     "%Y年%m月%d日 %H時%M分%S秒",
}

// keywords are the format keywords in the order they should be reported
var keywords = []string{"default", "iso", "jp", keywordJPWD, "jphm", "jphms"}

// Keywords returns a copy of the format keywords in a fixed order
func Keywords() []string {
	return append([]string{}, keywords...)
}

// Spec describes how a time is to be rendered
type Spec struct {
	pattern      string
	substWeekday bool
}

// Resolve maps a format keyword to the Spec describing it. The empty
// string selects the default, date-only format. Anything which is not a
// keyword is taken to be a strftime pattern and is used as given; Resolve
// never fails.
func Resolve(keyword string) Spec {
	if keyword == "" {
		return Spec{pattern: DfltPattern}
	}

	if p, ok := patterns[keyword]; ok {
		return Spec{
			pattern:      p,
			substWeekday: keyword == keywordJPWD,
		}
	}

	return Spec{pattern: keyword}
}

// Pattern returns the strftime pattern the Spec will render with
func (s Spec) Pattern() string {
	return s.pattern
}

// Render formats the time according to the Spec. For the jpwd keyword the
// numeric weekday in the rendered string is replaced with its Japanese
// name.
func (s Spec) Render(t time.Time) string {
	out := strftime.Format(s.pattern, t)
	if s.substWeekday {
		out = SubstWeekday(out)
	}

	return out
}

// weekdayNames gives the Japanese name for each day of the week, indexed
// by the weekday number that the strftime %w conversion produces (0 is
// Sunday)
var weekdayNames = [...]string{"日", "月", "火", "水", "木", "金", "土"}

// unknownWeekday is used in place of a name for digits with no weekday
const unknownWeekday = "?"

// SubstWeekday replaces each parenthesized single digit in s with the
// Japanese name of the weekday that the digit denotes, dropping the
// parentheses. Digits outside the range 0 to 6 are replaced with a
// question mark. This gives the %w conversion, which can only produce a
// number, a localized form.
func SubstWeekday(s string) string {
	rs := []rune(s)

	var b strings.Builder

	for i := 0; i < len(rs); i++ {
		if rs[i] == '(' &&
			i+2 < len(rs) &&
			rs[i+1] >= '0' && rs[i+1] <= '9' &&
			rs[i+2] == ')' {
			b.WriteString(weekdayName(rs[i+1]))

			i += 2

			continue
		}

		b.WriteRune(rs[i])
	}

	return b.String()
}

// weekdayName returns the Japanese weekday name for the given digit
func weekdayName(digit rune) string {
	if i := int(digit - '0'); i < len(weekdayNames) {
		return weekdayNames[i]
	}

	return unknownWeekday
}
