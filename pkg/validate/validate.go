package validate

import (
	"net/mail"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Vietnamese mobile numbers: 0 or +84 prefix followed by a carrier code.
var vnPhoneRegex = regexp.MustCompile(`^(0|\+84)(3[2-9]|5[2689]|7[06-9]|8[1-689]|9[0-9]|87)[0-9]{7}$`)

// MissingFields returns the names of required fields whose value is empty
// after trimming. The caller reports all of them at once, not just the first.
func MissingFields(fields map[string]string, required []string) []string {
	var missing []string
	for _, name := range required {
		if strings.TrimSpace(fields[name]) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// IsEmail reports whether s parses as an RFC 5322 address.
func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// IsVietnamesePhone reports whether s is a valid Vietnamese mobile number.
func IsVietnamesePhone(s string) bool {
	return vnPhoneRegex.MatchString(s)
}

// ParseDecimal parses a numeric form value leniently: comma decimal
// separators and dot thousands separators are both accepted, since values
// arrive from multipart forms as free text.
func ParseDecimal(val string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(val)
	if s == "" {
		return decimal.Zero, false
	}
	if strings.Contains(s, ".") && strings.Contains(s, ",") {
		// Both present: dots are thousands separators, comma is decimal.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	} else {
		s = strings.Replace(s, ",", ".", 1)
		s = strings.ReplaceAll(s, " ", "")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseNonNegativeDecimal parses like ParseDecimal and additionally rejects
// negative values.
func ParseNonNegativeDecimal(val string) (decimal.Decimal, bool) {
	d, ok := ParseDecimal(val)
	if !ok || d.IsNegative() {
		return decimal.Zero, false
	}
	return d, true
}

// ParseNonNegativeInt parses an integer form value, rejecting negatives and
// fractions.
func ParseNonNegativeInt(val string) (int, bool) {
	d, ok := ParseDecimal(val)
	if !ok || d.IsNegative() || !d.IsInteger() {
		return 0, false
	}
	return int(d.IntPart()), true
}
