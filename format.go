package money

import (
	"fmt"
	"strings"
)

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns the amount followed by the currency code.
// See also method [Money.String] and constructor [Registry.Parse].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// AppendText implements the [encoding.TextAppender] interface.
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (m Money) AppendText(text []byte) ([]byte, error) {
	return append(text, m.String()...), nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// The value is encoded as a JSON string, such as "1.05 USD", to preserve
// all digits.
// Values do not implement [json.Unmarshaler], since decoding requires
// a [Registry]; decode into a string and use [Registry.Parse] instead.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (m Money) MarshalJSON() ([]byte, error) {
	s := m.String()
	text := make([]byte, 0, len(s)+2)
	text = append(text, '"')
	text = append(text, s...)
	text = append(text, '"')
	return text, nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example      | Description                |
//	| ------ | ------------ | -------------------------- |
//	| %s, %v | 5.678 XRP    | Amount and currency        |
//	| %q     | "5.678 XRP"  | Quoted amount and currency |
//	| %f     | 5.678        | Amount                     |
//	| %d     | 5678         | Amount in minor units      |
//	| %c     | XRP          | Currency                   |
//
// The '-' format flag can be used with all verbs.
// The '+' and '0' format flags can be used with %f and %d.
// Precision is not supported; amounts always have the fraction of their currency.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (m Money) Format(state fmt.State, verb rune) {
	// Body
	var body string
	numeric := false
	switch verb {
	case 's', 'S', 'v', 'V':
		body = m.String()
	case 'q', 'Q':
		body = `"` + m.String() + `"`
	case 'f', 'F':
		body, numeric = m.Amount(), true
	case 'd', 'D':
		body, numeric = m.Value(), true
	case 'c', 'C':
		body = m.Curr()
	default:
		//nolint:errcheck
		fmt.Fprintf(state, "%%!%c(money.Money=%s)", verb, m.String())
		return
	}

	// Arithmetic sign
	sign := ""
	if numeric {
		if rest, ok := strings.CutPrefix(body, "-"); ok {
			sign, body = "-", rest
		} else if state.Flag('+') {
			sign = "+"
		}
	}

	// Padding
	width := len(sign) + len(body)
	lspaces, lzeros, tspaces := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && numeric:
			lzeros = w - width
		default:
			lspaces = w - width
		}
	}

	var buf strings.Builder
	buf.WriteString(strings.Repeat(" ", lspaces))
	buf.WriteString(sign)
	buf.WriteString(strings.Repeat("0", lzeros))
	buf.WriteString(body)
	buf.WriteString(strings.Repeat(" ", tspaces))

	// Writing result
	//nolint:errcheck
	state.Write([]byte(buf.String()))
}
