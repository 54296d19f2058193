package decimal

import (
	"io"

	"github.com/calebcase/bigdec/wire"
)

// Schema describes how a decimal field is laid out. Precision and scale are
// interpreted by the caller and are not needed to read or write the field.
type Schema struct {
	// Fixed is true for fixed fields, which are always Size bytes long (Size
	// must be positive). Otherwise the field is a length prefixed bytes field
	// written at the decimal's own length.
	Fixed bool
	Size  int
}

// Encoder is an encoder.
type Encoder struct {
	schema Schema
	we     wire.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, we wire.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		we:     we,
	}
}

// Encode writes the decimal as a single field.
func (e *Encoder) Encode(d Decimal) (err error) {
	defer Error.WrapP(&err)

	if e.schema.Fixed {
		if e.schema.Size <= 0 {
			return Error.New("invalid: size=%d", e.schema.Size)
		}

		data, err := d.BytesWithLength(e.schema.Size)
		if err != nil {
			return err
		}

		return e.we.Fixed(data)
	}

	data, err := d.Bytes()
	if err != nil {
		return err
	}

	return e.we.Bytes(data)
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
	wd     wire.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, wd wire.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		wd:     wd,
	}
}

// Decode reads a single decimal field. At the end of the stream io.EOF is
// returned unwrapped.
func (d *Decoder) Decode() (_ Decimal, err error) {
	defer func() {
		if err != nil && err != io.EOF {
			err = Error.Wrap(err)
		}
	}()

	var data []byte

	if d.schema.Fixed {
		if d.schema.Size <= 0 {
			return Decimal{}, Error.New("invalid: size=%d", d.schema.Size)
		}

		data, err = d.wd.Fixed(d.schema.Size)
	} else {
		data, err = d.wd.Bytes()
	}
	if err != nil {
		return Decimal{}, err
	}

	return FromBytes(data), nil
}
