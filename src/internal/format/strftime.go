// FILE: chanlog/src/internal/format/strftime.go
package format

import "strings"

// strftime verb -> Go reference-time layout element. Covers the verbs
// the timestamp_fmt option historically accepted.
var strftimeVerbs = map[byte]string{
	'a': "Mon",
	'A': "Monday",
	'b': "Jan",
	'B': "January",
	'c': "Mon Jan  2 15:04:05 2006",
	'd': "02",
	'e': "_2",
	'H': "15",
	'I': "03",
	'j': "002",
	'm': "01",
	'M': "04",
	'p': "PM",
	'S': "05",
	'x': "01/02/06",
	'X': "15:04:05",
	'y': "06",
	'Y': "2006",
	'z': "-0700",
	'Z': "MST",
	'%': "%",
}

// Layout converts a strftime-style format string to a Go time layout.
// Unrecognized verbs pass through literally, including the '%'.
func Layout(format string) string {
	var b strings.Builder
	b.Grow(len(format))

	for i := 0; i < len(format); i++ {
		if format[i] != '%' || i+1 >= len(format) {
			b.WriteByte(format[i])
			continue
		}

		i++
		if elem, ok := strftimeVerbs[format[i]]; ok {
			b.WriteString(elem)
		} else {
			b.WriteByte('%')
			b.WriteByte(format[i])
		}
	}

	return b.String()
}
