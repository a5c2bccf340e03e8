package catalog

import "strconv"

// NumberOrderExpr is the SQL expression the catalog store sorts by: the
// numeric value of the leading digit run of the card number, 0 when absent.
// ExtractLeadingNumber must stay in lockstep with it.
const NumberOrderExpr = "COALESCE(NULLIF(substring(number from '^[0-9]+'), '')::int, 0)"

// ExtractLeadingNumber derives the numeric sort key from a card number like
// "58/102". Card numbers are semi-structured: promo cards carry plain numbers
// ("4") and a few carry non-numeric prefixes. The rule is: take the leading
// run of decimal digits, 0 if there is none, so malformed numbers sort first
// within their set in a deterministic order.
func ExtractLeadingNumber(number string) int {
	end := 0
	for end < len(number) && number[end] >= '0' && number[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}

	n, err := strconv.Atoi(number[:end])
	if err != nil {
		// Digit run too long to fit an int; treat like a malformed number
		return 0
	}
	return n
}
