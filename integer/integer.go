package integer

import (
	"fmt"
	"math/big"

	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("integer")

// SignExtendError is returned when a value's minimal encoding does not fit in
// the requested number of bytes.
type SignExtendError struct {
	Requested int
	Needed    int
}

func (e *SignExtendError) Error() string {
	return fmt.Sprintf("sign extend: requested=%d needed=%d", e.Requested, e.Needed)
}

// Bytes returns the minimal big-endian two's-complement encoding of i. Zero
// encodes as a single zero byte.
func Bytes(i *big.Int) []byte {
	switch i.Sign() {
	case 0:
		return []byte{0}
	case 1:
		data := i.Bytes()
		if data[0]&0b_1000_0000 != 0 {
			data = append([]byte{0}, data...)
		}

		return data
	}

	size := Size(i)

	// 2^(8*size) + i is the unsigned bit pattern of i at size bytes.
	u := new(big.Int).Lsh(big.NewInt(1), uint(8*size))
	u.Add(u, i)

	return u.FillBytes(make([]byte, size))
}

// Size returns the length of Bytes(i).
func Size(i *big.Int) int {
	switch i.Sign() {
	case 0:
		return 1
	case 1:
		return i.BitLen()/8 + 1
	}

	// For negative i the magnitude bits are those of ^i (which is -i-1).
	return new(big.Int).Not(i).BitLen()/8 + 1
}

// SetBytes sets i to the big-endian two's-complement value of data and
// returns i. Empty data is zero.
func SetBytes(i *big.Int, data []byte) *big.Int {
	i.SetBytes(data)

	if len(data) > 0 && data[0]&0b_1000_0000 != 0 {
		u := new(big.Int).Lsh(big.NewInt(1), uint(8*len(data)))
		i.Sub(i, u)
	}

	return i
}

// Extend sign extends data (a two's-complement encoding) to exactly size
// bytes. The leading bytes are filled with 0xFF when data is negative and
// 0x00 otherwise.
func Extend(data []byte, size int) (_ []byte, err error) {
	if size < len(data) {
		return nil, Error.Wrap(&SignExtendError{
			Requested: size,
			Needed:    len(data),
		})
	}

	var fill byte
	if len(data) > 0 && data[0]&0b_1000_0000 != 0 {
		fill = 0b_1111_1111
	}

	out := make([]byte, size)
	start := size - len(data)

	for i := 0; i < start; i++ {
		out[i] = fill
	}
	copy(out[start:], data)

	return out, nil
}
