package money

import (
	"math/big"
	"strings"

	"github.com/amirasaad/moneycore/pkg/currency"
)

// ParseOptions carries the caller overrides Parse and ParseAny accept.
type ParseOptions struct {
	// Currency overrides the currency a symbol-form input would otherwise
	// default to. Ignored for code-form and Shape input.
	Currency *currency.Code
}

// ParseOption configures a ParseOptions.
type ParseOption func(*ParseOptions)

// WithCurrency overrides the resolved currency for a symbol-form parse.
func WithCurrency(code currency.Code) ParseOption {
	return func(o *ParseOptions) { o.Currency = &code }
}

func resolveParseOptions(opts []ParseOption) ParseOptions {
	var o ParseOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// matchSymbol delegates to currency.MatchSymbol; guards.go reaches the
// symbol table through it, while parseString calls currency.MatchSymbol
// directly.
func matchSymbol(s string) (symbol, amountText string, ok bool) {
	return currency.MatchSymbol(s)
}

// ParseAny implements the full "Start -> Classify" state machine: x may be
// a code-form string, a symbol-form string, a Shape, or an already-parsed
// Price (passed through unchanged; scale is always preserved as-is).
// Anything else, or a string matching neither known format, fails with
// InvalidFormat.
func ParseAny(x any, opts ...ParseOption) (Price, error) {
	switch v := x.(type) {
	case Price:
		return v, nil
	case Shape:
		return coerceShape(v)
	case string:
		return parseString(v, resolveParseOptions(opts))
	default:
		return Price{}, invalidFormatErr("<value>", "unrecognized input type")
	}
}

func parseString(s string, opts ParseOptions) (Price, error) {
	if codeFormLenient.MatchString(s) {
		return parseCodeForm(s)
	}
	if symbol, amountText, ok := currency.MatchSymbol(s); ok {
		return parseSymbolForm(symbol, amountText, opts)
	}
	return Price{}, invalidFormatErr(s, "matches neither code-form nor symbol-form")
}

func parseCodeForm(s string) (Price, error) {
	sp := strings.IndexByte(s, ' ')
	if sp < 0 {
		return Price{}, invalidFormatErr(s, "code-form requires a space between code and amount")
	}
	code := currency.Code(s[:sp])
	amountText := strings.TrimSpace(s[sp+1:])

	amount, scale, err := assembleAmount(amountText, currency.DefaultScaleFor(code))
	if err != nil {
		return Price{}, err
	}
	return Price{amount: amount, currency: code, scale: scale}, nil
}

func parseSymbolForm(symbol, amountText string, opts ParseOptions) (Price, error) {
	def, hasDefault := currency.DefaultCurrencyForSymbol(symbol)

	var code currency.Code
	switch {
	case opts.Currency != nil:
		if uniqueCode, ok := currency.IsUniqueSymbol(symbol); ok && uniqueCode != *opts.Currency {
			return Price{}, symbolMismatchErr(symbol, uniqueCode, *opts.Currency)
		}
		if requiredSymbol, ok := currency.RequiresUniqueSymbol(*opts.Currency, symbol); ok {
			return Price{}, symbolMismatchErr(requiredSymbol, *opts.Currency, *opts.Currency)
		}
		code = *opts.Currency
	case hasDefault:
		code = def
	default:
		return Price{}, invalidFormatErr(symbol, "unrecognized currency symbol")
	}

	amountText = strings.TrimSpace(amountText)
	amount, scale, err := assembleAmount(amountText, currency.DefaultScaleFor(code))
	if err != nil {
		return Price{}, err
	}
	return Price{amount: amount, currency: code, scale: scale}, nil
}

// assembleAmount implements "Amount assembly" and "Scale inference": strip
// grouping separators, split sign/integer/fraction, infer the output scale
// from the fractional digit count against the currency default, pad, and
// parse as a big signed integer.
func assembleAmount(amountText string, defaultScale currency.Scale) (*big.Int, currency.Scale, error) {
	sign := ""
	rest := amountText
	if strings.HasPrefix(rest, "-") {
		sign = "-"
		rest = rest[1:]
	}

	intPart := rest
	fracPart := ""
	if dot := strings.IndexByte(rest, '.'); dot >= 0 {
		intPart = rest[:dot]
		fracPart = rest[dot+1:]
	}

	intPart = stripGrouping(intPart)
	fracPart = stripGrouping(fracPart)

	if intPart == "" {
		intPart = "0"
	}
	if !isDigits(intPart) || (fracPart != "" && !isDigits(fracPart)) {
		return nil, 0, invalidFormatErr(amountText, "amount contains non-digit characters")
	}

	k := len(fracPart)
	dc := defaultScale.Digits()

	var targetScale currency.Scale
	if k <= dc {
		targetScale = defaultScale
	} else {
		s, ok := currency.ScaleWithAtLeastDigits(k)
		if !ok {
			return nil, 0, invalidFormatErr(amountText, "fractional part is finer than any supported scale")
		}
		targetScale = s
	}

	padded := fracPart + strings.Repeat("0", targetScale.Digits()-len(fracPart))

	digitsStr := sign + intPart + padded
	amount, ok := new(big.Int).SetString(digitsStr, 10)
	if !ok {
		return nil, 0, invalidFormatErr(amountText, "amount is not a valid integer after assembly")
	}
	return amount, targetScale, nil
}

func stripGrouping(s string) string {
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, ",", "")
	return s
}

func isDigits(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
