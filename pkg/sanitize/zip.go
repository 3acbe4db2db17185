package sanitize

// Zip strips everything but digits from a ZIP code and requires exactly five
// to remain. ZIP+4 input is rejected rather than truncated.
func Zip(zip string) (string, bool) {
	digits := nonDigitRe.ReplaceAllString(zip, "")
	if len(digits) != 5 {
		return "", false
	}
	return digits, true
}
