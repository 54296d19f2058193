package decimal

import (
	"math/big"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/calebcase/bigdec/integer"
)

var (
	_ msgpack.CustomEncoder = Decimal{}
	_ msgpack.CustomDecoder = (*Decimal)(nil)
	_ yaml.Marshaler        = Decimal{}
	_ yaml.Unmarshaler      = (*Decimal)(nil)
)

// MarshalBinary implements encoding.BinaryMarshaler using Bytes.
func (d Decimal) MarshalBinary() (data []byte, err error) {
	return d.Bytes()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler using FromBytes.
func (d *Decimal) UnmarshalBinary(data []byte) (err error) {
	*d = FromBytes(data)

	return nil
}

// fromInt64 returns a decimal whose length is the minimal encoding length of
// v.
func fromInt64(v int64) Decimal {
	i := big.NewInt(v)

	return Decimal{
		value:  i,
		length: integer.Size(i),
	}
}

// EncodeMsgpack implements msgpack.CustomEncoder. The value is written as an
// integer.
func (d Decimal) EncodeMsgpack(enc *msgpack.Encoder) (err error) {
	defer Error.WrapP(&err)

	v, err := d.Int64()
	if err != nil {
		return err
	}

	return enc.EncodeInt(v)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (d *Decimal) DecodeMsgpack(dec *msgpack.Decoder) (err error) {
	defer Error.WrapP(&err)

	v, err := dec.DecodeInt64()
	if err != nil {
		return err
	}

	*d = fromInt64(v)

	return nil
}

// MarshalYAML implements yaml.Marshaler. The value is written as an integer.
func (d Decimal) MarshalYAML() (_ interface{}, err error) {
	v, err := d.Int64()
	if err != nil {
		return nil, err
	}

	return v, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Decimal) UnmarshalYAML(node *yaml.Node) (err error) {
	defer Error.WrapP(&err)

	var v int64

	err = node.Decode(&v)
	if err != nil {
		return err
	}

	*d = fromInt64(v)

	return nil
}
