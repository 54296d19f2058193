package decimal

import (
	"fmt"
	"hash/maphash"
	"math/big"

	"github.com/zeebo/errs"

	"github.com/calebcase/bigdec/integer"
)

// Error is the error class for this package.
var Error = errs.Class("decimal")

// SignExtendError is returned when a decimal is encoded to fewer bytes than
// its minimal two's-complement encoding needs.
type SignExtendError = integer.SignExtendError

// OverflowError is returned when a decimal does not fit in a narrower integer
// type.
type OverflowError struct {
	Value *big.Int
	Bits  int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("value too large for int%d: %s", e.Bits, e.Value)
}

var zero = new(big.Int)

// Decimal is an unscaled decimal value and the byte length it is encoded to
// by default. The zero value is zero with a length of zero.
//
// Decimals are not comparable with == and cannot be map keys. Use Equal, or
// Key for a map key.
type Decimal struct {
	_ [0]func()

	value  *big.Int
	length int
}

// New returns a decimal with the given value and default length. The value is
// copied. Whether value fits in length is only checked when encoding.
func New(value *big.Int, length int) Decimal {
	d := Decimal{
		value:  new(big.Int),
		length: length,
	}

	if value != nil {
		d.value.Set(value)
	}

	return d
}

// FromBytes decodes data as a big-endian two's-complement integer. The
// returned decimal remembers len(data) as its length.
func FromBytes(data []byte) Decimal {
	return Decimal{
		value:  integer.SetBytes(new(big.Int), data),
		length: len(data),
	}
}

func (d Decimal) int() *big.Int {
	if d.value == nil {
		return zero
	}

	return d.value
}

// Value returns a copy of the unscaled value.
func (d Decimal) Value() *big.Int {
	return new(big.Int).Set(d.int())
}

// Len returns the default encoding length.
func (d Decimal) Len() int {
	return d.length
}

// Sign returns -1, 0 or +1 depending on the sign of the value.
func (d Decimal) Sign() int {
	return d.int().Sign()
}

// Bytes encodes the decimal at its default length.
func (d Decimal) Bytes() (data []byte, err error) {
	return d.BytesWithLength(d.length)
}

// BytesWithLength encodes the decimal to exactly length bytes, sign extending
// as needed. If the value needs more than length bytes a SignExtendError is
// returned.
func (d Decimal) BytesWithLength(length int) (data []byte, err error) {
	defer Error.WrapP(&err)

	return integer.Extend(integer.Bytes(d.int()), length)
}

// Int64 returns the value as an int64. If the value is outside the int64
// range an OverflowError is returned.
func (d Decimal) Int64() (_ int64, err error) {
	v := d.int()
	if !v.IsInt64() {
		return 0, Error.Wrap(&OverflowError{
			Value: d.Value(),
			Bits:  64,
		})
	}

	return v.Int64(), nil
}

// Equal reports whether d and o have the same value. Lengths are ignored.
func (d Decimal) Equal(o Decimal) bool {
	return d.int().Cmp(o.int()) == 0
}

// Hash returns a hash of the value consistent with Equal.
func (d Decimal) Hash(seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	_, _ = h.Write(integer.Bytes(d.int()))

	return h.Sum64()
}

// Key returns a comparable key for the value consistent with Equal. It is
// suitable for use as a map key.
func (d Decimal) Key() string {
	return string(integer.Bytes(d.int()))
}
