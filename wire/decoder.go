package wire

import (
	"encoding/binary"
	"io"
)

// MaxBytes is the largest bytes field a decoder will allocate for.
const MaxBytes = 1 << 30

// Decoder reads framed fields.
type Decoder interface {
	Long() (_ int64, err error)
	Fixed(size int) (data []byte, err error)
	Bytes() (data []byte, err error)

	Consumed() uint64
}

type decoder struct {
	r io.Reader

	consumed uint64

	value [1]byte
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) Decoder {
	return &decoder{
		r: r,
	}
}

// ReadByte implements io.ByteReader so the varint reader can pull one byte
// at a time without buffering past the field.
func (d *decoder) ReadByte() (byte, error) {
	_, err := io.ReadFull(d.r, d.value[:])
	if err != nil {
		return 0, err
	}

	d.consumed++

	return d.value[0], nil
}

// Long reads a zig-zag variable length integer.
func (d *decoder) Long() (_ int64, err error) {
	v, err := binary.ReadVarint(d)
	if err != nil {
		// EOF before the first byte is the end of the stream.
		if err == io.EOF {
			return 0, err
		}

		return 0, Error.Wrap(err)
	}

	return v, nil
}

// Fixed reads exactly size bytes.
func (d *decoder) Fixed(size int) (data []byte, err error) {
	if size < 0 {
		return nil, Error.New("invalid: size=%d", size)
	}

	data = make([]byte, size)

	n, err := io.ReadFull(d.r, data)
	d.consumed += uint64(n)
	if err != nil {
		if err == io.EOF {
			return nil, err
		}

		return nil, Error.Wrap(err)
	}

	return data, nil
}

// Bytes reads a length followed by that many bytes.
func (d *decoder) Bytes() (data []byte, err error) {
	size, err := d.Long()
	if err != nil {
		return nil, err
	}

	if size < 0 || size > MaxBytes {
		return nil, Error.New("invalid: size=%d", size)
	}

	data, err = d.Fixed(int(size))
	if err == io.EOF {
		return nil, Error.Wrap(io.ErrUnexpectedEOF)
	}

	return data, err
}

// Consumed returns the number of bytes read so far.
func (d *decoder) Consumed() uint64 {
	return d.consumed
}
