package money

import "regexp"

// codeFormStrict matches the code-form grammar with underscore-only
// thousands grouping: CCC -?digits(.digits)?
var codeFormStrict = regexp.MustCompile(`^[A-Z]{3} -?\d(?:_?\d)*(?:\.\d(?:_?\d)*)?$`)

// codeFormLenient additionally accepts commas, for Parse's convenience
// mode; guards.IsCodeForm always uses the strict form.
var codeFormLenient = regexp.MustCompile(`^[A-Z]{3} -?\d(?:[_,]?\d)*(?:\.\d(?:[_,]?\d)*)?$`)

// IsCodeForm reports whether s is a strict code-form string: three
// uppercase letters, a space, an optionally-signed decimal amount grouped
// with underscores only. Commas are rejected here even though Parse
// accepts them for convenience.
func IsCodeForm(s string) bool {
	return codeFormStrict.MatchString(s)
}

// IsSymbolForm reports whether s begins or ends with a known currency
// glyph and is not itself code-form.
func IsSymbolForm(s string) bool {
	if IsCodeForm(s) {
		return false
	}
	_, _, ok := matchSymbolForm(s)
	return ok
}

// IsShape reports whether x is a well-formed Shape: an exact big-integer
// amount, a non-empty currency string, and (if present) a known scale
// token.
func IsShape(x any) bool {
	return isShape(x)
}

// IsPrice reports whether x is recognized as any of the three input forms:
// code-form string, symbol-form string, or Shape.
func IsPrice(x any) bool {
	switch v := x.(type) {
	case string:
		return IsCodeForm(v) || IsSymbolForm(v)
	case Shape:
		return IsShape(v)
	default:
		return false
	}
}

// AssureCodeForm fails with InvalidFormat unless IsCodeForm(s).
func AssureCodeForm(s string) error {
	if !IsCodeForm(s) {
		return invalidFormatErr(s, "not a valid code-form string")
	}
	return nil
}

// AssureSymbolForm fails with InvalidFormat unless IsSymbolForm(s).
func AssureSymbolForm(s string) error {
	if !IsSymbolForm(s) {
		return invalidFormatErr(s, "not a valid symbol-form string")
	}
	return nil
}

// AssureShape fails with InvalidFormat unless IsShape(x).
func AssureShape(x any) error {
	if !IsShape(x) {
		return invalidFormatErr("<shape>", "not a valid shape value")
	}
	return nil
}

// AssurePrice fails with InvalidFormat unless IsPrice(x).
func AssurePrice(x any) error {
	if !IsPrice(x) {
		return invalidFormatErr("<value>", "not a recognized price input")
	}
	return nil
}

// matchSymbolForm is guards' private view of currency.MatchSymbol: it only
// reports a match, without resolving the currency (parse.go does that).
func matchSymbolForm(s string) (symbol, amountText string, ok bool) {
	return matchSymbol(s)
}
