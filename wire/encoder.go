package wire

import (
	"encoding/binary"
	"io"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("wire")

// Encoder writes framed fields.
type Encoder interface {
	Long(v int64) (err error)
	Fixed(data []byte) (err error)
	Bytes(data []byte) (err error)
}

type encoder struct {
	w io.Writer

	buf [binary.MaxVarintLen64]byte
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) Encoder {
	return &encoder{
		w: w,
	}
}

// Long writes v as a zig-zag variable length integer.
func (e *encoder) Long(v int64) (err error) {
	n := binary.PutVarint(e.buf[:], v)

	_, err = e.w.Write(e.buf[:n])
	if err != nil {
		return Error.Wrap(oops.Trace(err))
	}

	return nil
}

// Fixed writes data without any framing. The reader must know the size.
func (e *encoder) Fixed(data []byte) (err error) {
	if len(data) == 0 {
		return nil
	}

	_, err = e.w.Write(data)
	if err != nil {
		return Error.Wrap(oops.Trace(err))
	}

	return nil
}

// Bytes writes the length of data followed by data.
func (e *encoder) Bytes(data []byte) (err error) {
	err = e.Long(int64(len(data)))
	if err != nil {
		return err
	}

	return e.Fixed(data)
}
