package utils

import (
	"math"
	"strconv"
)

// FormatIDR renders an amount the way the storefront does: "Rp 1.500.000".
// Rupiah amounts carry no decimals; fractions are rounded half away from zero.
func FormatIDR(amount float64) string {
	n := int64(math.Round(math.Abs(amount)))
	digits := strconv.FormatInt(n, 10)

	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}

	if amount < 0 && n != 0 {
		return "-Rp " + string(out)
	}
	return "Rp " + string(out)
}
