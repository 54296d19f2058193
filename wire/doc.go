// Package wire provides the Avro binary framing used for byte fields.
//
// Two framings carry raw byte payloads such as decimals:
//
//  | Framing | Layout                                          |
//  |---------|-------------------------------------------------|
//  | Fixed   | Exactly Size bytes. The size comes from schema. |
//  | Bytes   | Long length, then that many bytes.              |
//  |---------|-------------------------------------------------|
//
// Longs are zig-zag encoded variable length integers (up to 10 bytes). The
// zig-zag step maps signed values to unsigned ones so that small magnitudes
// of either sign stay short:
//
//  |  0 | 00 |
//  | -1 | 01 |
//  |  1 | 02 |
//  | -2 | 03 |
//  | 64 | 80 . 01 |
//
// Each subsequent byte is present while the high bit of the previous byte is
// set. The low seven bits carry data, least significant group first.
package wire
