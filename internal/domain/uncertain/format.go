package uncertain

import (
	"fmt"
	"strconv"
	"strings"
)

// Text renders q with the given number of decimal digits. A negative
// precision renders each number in its shortest round-trip decimal form.
//
// Intervals render as "[start, end]" and centered quantities as
// "value±uncertainty".
func (q Quantity) Text(precision int) string {
	if precision < 0 {
		precision = -1
	}

	var b strings.Builder
	switch q.kind {
	case KindInterval:
		b.WriteByte('[')
		b.WriteString(strconv.FormatFloat(q.a, 'f', precision, 64))
		b.WriteString(", ")
		b.WriteString(strconv.FormatFloat(q.b, 'f', precision, 64))
		b.WriteByte(']')
	default:
		b.WriteString(strconv.FormatFloat(q.a, 'f', precision, 64))
		b.WriteString("±")
		b.WriteString(strconv.FormatFloat(q.b, 'f', precision, 64))
	}
	return b.String()
}

// String implements fmt.Stringer with full precision.
func (q Quantity) String() string {
	return q.Text(-1)
}

// Format implements fmt.Formatter. The %v and %s verbs honour precision and
// width, so "%.2v" renders two decimal digits and "%-20v" pads on the right.
func (q Quantity) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		precision, ok := s.Precision()
		if !ok {
			precision = -1
		}
		text := q.Text(precision)
		if width, ok := s.Width(); ok {
			if pad := width - len([]rune(text)); pad > 0 {
				if s.Flag('-') {
					text += strings.Repeat(" ", pad)
				} else {
					text = strings.Repeat(" ", pad) + text
				}
			}
		}
		_, _ = fmt.Fprint(s, text)
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(uncertain.Quantity=%s)", verb, q.String())
	}
}
