// Package money provides fixed-point monetary amounts stored as int64 minor
// units (1/100 of the currency unit). Arithmetic on amounts is exact; the only
// rounding point is MulRat, which rounds half-even to the nearest minor unit.
package money

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Money is an amount in minor units. Stored in the database as BIGINT and
// rendered over JSON as a two-decimal number.
type Money int64

// FromUnits converts whole currency units into Money.
func FromUnits(units int64) Money { return Money(units * 100) }

// MinorUnits returns the raw minor-unit value.
func (m Money) MinorUnits() int64 { return int64(m) }

func (m Money) Add(o Money) Money { return m + o }

// MulInt multiplies by an integer factor. Exact.
func (m Money) MulInt(n int64) Money { return Money(int64(m) * n) }

// MulRat multiplies by num/den and rounds half-even to the nearest minor
// unit. den must be positive.
func (m Money) MulRat(num, den int64) Money {
	if den <= 0 {
		panic(fmt.Sprintf("money: non-positive denominator %d", den))
	}
	p := new(big.Int).Mul(big.NewInt(int64(m)), big.NewInt(num))
	d := big.NewInt(den)

	q, r := new(big.Int).QuoRem(p, d, new(big.Int))
	if r.Sign() == 0 {
		return Money(q.Int64())
	}

	neg := r.Sign() < 0
	r.Abs(r)
	step := int64(1)
	if neg {
		step = -1
	}

	twice := new(big.Int).Lsh(r, 1)
	switch twice.Cmp(d) {
	case 1:
		q.Add(q, big.NewInt(step))
	case 0:
		// tie: round to even
		if q.Bit(0) == 1 {
			q.Add(q, big.NewInt(step))
		}
	}
	return Money(q.Int64())
}

// String renders the amount with two decimals, e.g. "7380.00".
func (m Money) String() string {
	v := int64(m)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" {
		return nil
	}
	v, err := parseDecimal(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Parse reads a decimal string such as "2000" or "2000.50".
func Parse(s string) (Money, error) {
	return parseDecimal(strings.TrimSpace(s))
}

// parseDecimal accepts "123", "123.4" and "123.45".
func parseDecimal(s string) (Money, error) {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("money: more than two decimal places in %q", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}
	if whole == "" {
		whole = "0"
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("money: invalid amount %q", s)
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("money: invalid amount %q", s)
	}
	v := w*100 + f
	if neg {
		v = -v
	}
	return Money(v), nil
}
