package sanitize

import "regexp"

var (
	nonDigitRe = regexp.MustCompile(`\D`)
	tenDigitRe = regexp.MustCompile(`^\d{10}$`)
)

// Phone reduces a US phone number to its 10 digits. Formatting characters are
// dropped and an 11-digit number with a leading country code "1" loses it.
//
//	Phone("+1 (555) 123-4567") // "5551234567", true
func Phone(phone string) (string, bool) {
	digits := nonDigitRe.ReplaceAllString(phone, "")
	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	if len(digits) != 10 {
		return "", false
	}
	return digits, true
}

// FormatPhone renders a 10-digit phone number as "(XXX) XXX-XXXX". The input
// must already be exactly 10 digits, as returned by Phone.
func FormatPhone(phone string) (string, bool) {
	if !tenDigitRe.MatchString(phone) {
		return "", false
	}
	return "(" + phone[:3] + ") " + phone[3:6] + "-" + phone[6:], true
}
