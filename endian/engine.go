// Package endian provides the byte-order engine used by all trajectory
// persistence code.
//
// It combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single EndianEngine interface, so record writers
// can append directly into a growing buffer while record readers decode
// fixed-width fields with the same byte order.
//
// Trajectory records default to little-endian; big-endian is available for
// interoperability and is recorded in the envelope header so readers can
// pick the matching engine.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it, so engines are
// stateless, immutable and safe for concurrent use.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the default byte
// order for trajectory records.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
