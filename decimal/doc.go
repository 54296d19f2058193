// Package decimal provides an arbitrary precision decimal logical value.
//
// The equation for a decimal number is:
//
//  number = value * 10 ^ -scale
//
// Where value is an unscaled integer of unbounded magnitude and scale is
// owned by the schema describing the field. This package only stores the
// unscaled value and the byte length it was read from (or should be written
// to by default). For example with a scale of 2:
//
//  1.23 = 123 * 10^-2
//
// Encoding
//
// The unscaled value is encoded big-endian in two's-complement. The first bit
// of the first byte is the sign bit:
//
//  | Value | Minimal   | Length 3          |
//  |-------|-----------|-------------------|
//  |     5 | 05        | 00 . 00 . 05      |
//  |    -1 | FF        | FF . FF . FF      |
//  |   127 | 7F        | 00 . 00 . 7F      |
//  |   128 | 00 . 80   | 00 . 00 . 80      |
//  |  -128 | 80        | FF . FF . 80      |
//  |  -129 | FF . 7F   | FF . FF . 7F      |
//  |-------|-----------|-------------------|
//
// Encoding at a length longer than the minimal encoding sign extends the
// value (0x00 fill for non-negative values, 0xFF fill for negative values).
// Encoding at a length shorter than the minimal encoding fails with a
// SignExtendError. Values are never truncated.
//
// Decoding accepts any byte sequence, including an empty one (which is zero
// with length zero). The length of a decoded value is the length of its input
// even when the input carries redundant sign bytes:
//
//  00 . 05 => value 5, length 2
//
// Equality
//
// Two decimals are equal when their unscaled values are equal. The length is
// presentation metadata and is ignored by Equal, Hash and Key.
//
// Fields
//
// Schemas declare decimals either as fixed fields (exactly Size bytes) or as
// variable length bytes fields. Encoder and Decoder read and write a single
// decimal field using a wire.Encoder or wire.Decoder.
//
// Narrowing
//
// Some serialization formats lack a big integer or byte blob representation.
// For those Int64 projects the value to a 64-bit integer and fails with an
// OverflowError rather than wrapping. MessagePack and YAML marshaling use this
// projection.
package decimal
