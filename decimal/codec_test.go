package decimal_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bigdec/decimal"
	"github.com/calebcase/bigdec/wire"
)

func TestEncodeDecode(t *testing.T) {
	type TC struct {
		name   string
		schema decimal.Schema
		dec    decimal.Decimal
		data   []byte
		length int
		Mark   error
	}

	tcs := []TC{
		{
			name:   "fixed positive",
			schema: decimal.Schema{Fixed: true, Size: 4},
			dec:    decimal.New(big.NewInt(5), 1),
			data:   []byte{0x00, 0x00, 0x00, 0x05},
			length: 4,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "fixed negative",
			schema: decimal.Schema{Fixed: true, Size: 3},
			dec:    decimal.FromBytes([]byte{0xFF}),
			data:   []byte{0xFF, 0xFF, 0xFF},
			length: 3,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "fixed exact",
			schema: decimal.Schema{Fixed: true, Size: 1},
			dec:    decimal.New(big.NewInt(-128), 0),
			data:   []byte{0x80},
			length: 1,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "bytes",
			schema: decimal.Schema{},
			dec:    decimal.FromBytes([]byte{0x00, 0x05}),
			data:   []byte{0x04, 0x00, 0x05},
			length: 2,
			Mark:   oops.New("unexpected"),
		},
		{
			name:   "bytes negative",
			schema: decimal.Schema{},
			dec:    decimal.New(big.NewInt(-129), 3),
			data:   []byte{0x06, 0xFF, 0xFF, 0x7F},
			length: 3,
			Mark:   oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			output := &bytes.Buffer{}
			e := decimal.NewEncoder(tc.schema, wire.NewEncoder(output))

			err := e.Encode(tc.dec)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.data, output.Bytes(), tc.Mark)

			d := decimal.NewDecoder(tc.schema, wire.NewDecoder(output))

			dec, err := d.Decode()
			require.NoError(t, err, tc.Mark)
			require.True(t, tc.dec.Equal(dec), tc.Mark)
			require.Equal(t, tc.length, dec.Len(), tc.Mark)

			_, err = d.Decode()
			require.Equal(t, io.EOF, err, tc.Mark)
		})
	}
}

func TestEncodeErrors(t *testing.T) {
	t.Run("fixed too small", func(t *testing.T) {
		output := &bytes.Buffer{}
		e := decimal.NewEncoder(decimal.Schema{Fixed: true, Size: 1}, wire.NewEncoder(output))

		err := e.Encode(decimal.New(big.NewInt(128), 1))
		require.Error(t, err)
		require.True(t, decimal.Error.Has(err), "%+v", err)

		var se *decimal.SignExtendError
		require.True(t, errors.As(err, &se), "%+v", err)
		require.Equal(t, &decimal.SignExtendError{Requested: 1, Needed: 2}, se)
		require.Zero(t, output.Len())
	})

	t.Run("bytes inconsistent length", func(t *testing.T) {
		output := &bytes.Buffer{}
		e := decimal.NewEncoder(decimal.Schema{}, wire.NewEncoder(output))

		err := e.Encode(decimal.New(big.NewInt(70000), 2))

		var se *decimal.SignExtendError
		require.True(t, errors.As(err, &se), "%+v", err)
		require.Equal(t, &decimal.SignExtendError{Requested: 2, Needed: 3}, se)
		require.Zero(t, output.Len())
	})
}

func TestDecodeStream(t *testing.T) {
	schema := decimal.Schema{Fixed: true, Size: 2}

	output := &bytes.Buffer{}
	e := decimal.NewEncoder(schema, wire.NewEncoder(output))

	values := []int64{0, 1, -1, 127, -32768, 32767}
	for _, v := range values {
		require.NoError(t, e.Encode(decimal.New(big.NewInt(v), 0)))
	}

	require.Equal(t, 2*len(values), output.Len())

	d := decimal.NewDecoder(schema, wire.NewDecoder(output))

	var got []int64

	for {
		dec, err := d.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		require.Equal(t, 2, dec.Len())

		v, err := dec.Int64()
		require.NoError(t, err)

		got = append(got, v)
	}

	require.Equal(t, values, got)
}

func TestDecodeTruncated(t *testing.T) {
	d := decimal.NewDecoder(
		decimal.Schema{Fixed: true, Size: 4},
		wire.NewDecoder(bytes.NewReader([]byte{0x00, 0x01})),
	)

	_, err := d.Decode()
	require.Error(t, err)
	require.True(t, errors.Is(err, io.ErrUnexpectedEOF), "%+v", err)
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestInvalidSchema(t *testing.T) {
	type TC struct {
		name   string
		schema decimal.Schema
	}

	tcs := []TC{
		{name: "zero size", schema: decimal.Schema{Fixed: true, Size: 0}},
		{name: "negative size", schema: decimal.Schema{Fixed: true, Size: -2}},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			output := &bytes.Buffer{}
			e := decimal.NewEncoder(tc.schema, wire.NewEncoder(output))

			err := e.Encode(decimal.New(big.NewInt(0), 1))
			require.Error(t, err)
			require.True(t, decimal.Error.Has(err), "%+v", err)
			require.Zero(t, output.Len())

			d := decimal.NewDecoder(tc.schema, wire.NewDecoder(bytes.NewReader(nil)))

			for n := 0; n < 3; n++ {
				_, err = d.Decode()
				require.Error(t, err)
				require.NotEqual(t, io.EOF, err)
				require.True(t, decimal.Error.Has(err), "%+v", err)
			}
		})
	}
}

func TestErrorClasses(t *testing.T) {
	t.Run("decode", func(t *testing.T) {
		d := decimal.NewDecoder(decimal.Schema{}, wire.NewDecoder(bytes.NewReader([]byte{0x01})))

		_, err := d.Decode()
		require.Error(t, err)
		require.True(t, decimal.Error.Has(err), "%+v", err)
		require.True(t, wire.Error.Has(err), "%+v", err)
	})

	t.Run("decode eof", func(t *testing.T) {
		d := decimal.NewDecoder(decimal.Schema{}, wire.NewDecoder(bytes.NewReader(nil)))

		_, err := d.Decode()
		require.Equal(t, io.EOF, err)
	})

	t.Run("encode", func(t *testing.T) {
		e := decimal.NewEncoder(decimal.Schema{Fixed: true, Size: 2}, wire.NewEncoder(failWriter{}))

		err := e.Encode(decimal.New(big.NewInt(1), 1))
		require.Error(t, err)
		require.True(t, decimal.Error.Has(err), "%+v", err)
		require.True(t, wire.Error.Has(err), "%+v", err)
	})
}
