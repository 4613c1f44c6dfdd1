package engine

import (
	"strconv"
	"strings"
)

// FormatNumber renders v as its shortest decimal form, keeping at least one
// fractional digit so 10 prints as "10.0".
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

func (r ReferenceRange) String() string {
	return strconv.FormatFloat(r.Low, 'f', r.Decimals, 64) + "-" + strconv.FormatFloat(r.High, 'f', r.Decimals, 64)
}
