// Package amount implements the fixed-point monetary value used across the
// engine. Funds are stored as an int64 count of 1/10000 units (4 decimal
// digits of precision), so all balance math is integer math. The usual
// arithmetic operators are deliberately not wrapped; only checked add and
// subtract are exposed so overflow can never pass silently.
package amount

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a signed monetary value scaled by 10000.
// Assumes no more than ~2^63/10^4 units per transaction or balance, which is
// cheaper than carrying an arbitrary-precision decimal through every account.
type Amount int64

// fract is the scaling factor: 4 fractional decimal digits.
const fract = 10_000

const (
	Zero Amount = 0
	One  Amount = fract
	Max  Amount = math.MaxInt64
	Min  Amount = math.MinInt64
)

// ErrParse reports a malformed or unrepresentable amount string.
var ErrParse = errors.New("amount: invalid value")

// CheckedAdd returns a+b, or ok=false if the sum overflows the scaled range.
func CheckedAdd(a, b Amount) (Amount, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return Zero, false
	}
	return sum, true
}

// CheckedSub returns a-b, or ok=false if the difference overflows the scaled range.
func CheckedSub(a, b Amount) (Amount, bool) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return Zero, false
	}
	return diff, true
}

// Parse converts a decimal string into an Amount.
//
// Accepted inputs are an optional sign, an optional integer part and an
// optional fractional part, as long as at least one digit is present
// ("1", "+1.0", "-.5", "3." are all valid). Embedded whitespace, exponents
// and repeated signs are rejected. Inputs carrying more than 4 significant
// fractional digits are rejected rather than truncated, so no information
// is ever lost on the way in ("1.00000" parses, "1.00001" does not).
func Parse(s string) (Amount, error) {
	if !wellFormed(s) {
		return Zero, ErrParse
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, ErrParse
	}
	scaled := d.Shift(4)
	if !scaled.IsInteger() {
		return Zero, ErrParse
	}
	bi := scaled.BigInt()
	if !bi.IsInt64() {
		return Zero, ErrParse
	}
	return Amount(bi.Int64()), nil
}

// wellFormed pre-screens the grammar: sign? digit* ('.' digit*)? with at
// least one digit overall. decimal.NewFromString alone would also admit
// exponent notation, which the input format does not allow.
func wellFormed(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits++
		}
	}
	return i == len(s) && digits > 0
}

// String renders the canonical decimal form: no trailing fractional zeros,
// no separator for whole values, and the sign kept even when the whole part
// is zero (-0.5 renders as "-0.5").
func (a Amount) String() string {
	u := uint64(a)
	neg := a < 0
	if neg {
		u = -u
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatUint(u/fract, 10))
	if rem := u % fract; rem != 0 {
		// rem+fract always has 5 digits; dropping the first gives the
		// zero-padded 4-digit fraction.
		digits := strconv.FormatUint(rem+fract, 10)[1:]
		b.WriteByte('.')
		b.WriteString(strings.TrimRight(digits, "0"))
	}
	return b.String()
}
