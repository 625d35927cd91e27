package utils

import "strconv"

// FormatRupiah renders an integer amount the way id-ID currency formatting
// does: "Rp 35.000", dot-grouped, no decimal places.
func FormatRupiah(amount int) string {
	prefix := "Rp "
	if amount < 0 {
		prefix = "-Rp "
		amount = -amount
	}

	str := strconv.Itoa(amount)
	n := len(str)
	if n <= 3 {
		return prefix + str
	}

	grouped := ""
	for i, digit := range str {
		if i > 0 && (n-i)%3 == 0 {
			grouped += "."
		}
		grouped += string(digit)
	}
	return prefix + grouped
}
