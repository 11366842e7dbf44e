package price

import (
	"errors"
	"fmt"
	"strings"
)

//go:generate go run scripts/currency/codegen.go

// Currency type represents a currency that a price can be denominated in.
// The zero value is [XXX], which indicates an unknown currency.
//
// Currency is implemented as an integer index into in-memory arrays that
// store the decimal precision and display rules of each currency.
// The set of currencies is closed: the arrays are generated from
// scripts/currency/currency_data.csv, so adding a currency is a compile-time
// change rather than a runtime registration.
//
// When persisting a currency value, use the code returned by the
// [Currency.Code] method rather than the integer index, as the mapping
// between index and currency may change in future versions.
type Currency uint8

// ErrUnknownCurrency is returned when a currency cannot be resolved from a
// code, or is missing from an exchange rate table.
var ErrUnknownCurrency = errors.New("unknown currency")

// CurrencyFormat holds the precision and display rules of a currency.
type CurrencyFormat struct {
	// Decimals is the number of decimal digits of the smallest scaled unit.
	Decimals int
	// DisplayDecimals is the number of fraction digits shown when formatting.
	DisplayDecimals int
	// MinDisplayValue is the largest value, in scaled units, rendered as the
	// underflow label. Only values strictly above it render as a number.
	MinDisplayValue int64
	// MaxDisplayValue is the largest value, in whole display units, rendered as a number.
	MaxDisplayValue int64
	// UnderflowLabel replaces non-zero values at or below MinDisplayValue.
	UnderflowLabel string
	// OverflowLabel replaces values above MaxDisplayValue.
	OverflowLabel string
	// Symbol is the optional display prefix.
	Symbol string
	// Acronym is the optional display suffix.
	Acronym string
}

// ParseCurr converts a string to currency.
// The input string must be a currency code in upper or lower case:
//
//	USD
//	usd
//
// ParseCurr returns an error if the string does not represent a known currency.
func ParseCurr(curr string) (Currency, error) {
	c, ok := currLookup[strings.ToUpper(curr)]
	if !ok {
		return XXX, fmt.Errorf("parsing %q: %w", curr, ErrUnknownCurrency)
	}
	return c, nil
}

// MustParseCurr is like [ParseCurr] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(curr string) Currency {
	c, err := ParseCurr(curr)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", curr, err))
	}
	return c
}

// Currencies returns all known currencies except [XXX], in index order.
func Currencies() []Currency {
	res := make([]Currency, 0, len(codeLookup)-1)
	for i := range codeLookup {
		if c := Currency(i); c != XXX {
			res = append(res, c)
		}
	}
	return res
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the Currency value.
// See also method [Currency.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// Code returns the code of the currency, such as "USD" or "ETH".
// This method always returns a valid code.
func (c Currency) Code() string {
	if int(c) >= len(codeLookup) {
		return codeLookup[XXX]
	}
	return codeLookup[c]
}

// Spec returns the precision and display rules of the currency.
// Unknown indices resolve to the rules of [XXX].
func (c Currency) Spec() CurrencyFormat {
	if int(c) >= len(formatLookup) {
		return formatLookup[XXX]
	}
	return formatLookup[c]
}

// Decimals returns the number of decimal digits of the currency's smallest
// scaled unit. For example, USD uses 2 (cents) and ETH uses 18 (wei).
func (c Currency) Decimals() int {
	return c.Spec().Decimals
}

// DisplayDecimals returns the number of fraction digits shown when
// formatting a price in this currency.
func (c Currency) DisplayDecimals() int {
	return c.Spec().DisplayDecimals
}

// Symbol returns the display prefix of the currency.
func (c Currency) Symbol() string {
	return c.Spec().Symbol
}

// Acronym returns the display suffix of the currency.
func (c Currency) Acronym() string {
	return c.Spec().Acronym
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseCurr].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Currency.Code].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	code := c.Code()
	text := make([]byte, 0, len(code)+2)
	text = append(text, '"')
	text = append(text, code...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// It allows currencies to be used as map keys in configuration files.
// See also constructor [ParseCurr].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// See also method [Currency.Code].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description     |
//	| ---------- | ------- | --------------- |
//	| %c, %s, %v | USD     | Currency        |
//	| %q         | "USD"   | Quoted currency |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Currency) Format(state fmt.State, verb rune) {
	curr := c.Code()
	if verb == 'q' || verb == 'Q' {
		curr = `"` + curr + `"`
	}

	// Padding
	if w, ok := state.Width(); ok && w > len(curr) {
		pad := strings.Repeat(" ", w-len(curr))
		if state.Flag('-') {
			curr += pad
		} else {
			curr = pad + curr
		}
	}

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'c', 'C':
		state.Write([]byte(curr))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(price.Currency="))
		state.Write([]byte(curr))
		state.Write([]byte(")"))
	}
}
