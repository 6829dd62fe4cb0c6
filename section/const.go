package section

const (
	// HeaderSize is the fixed size of the trajectory envelope header in bytes.
	HeaderSize = 16

	// ChecksumSize is the size of the trailing payload checksum in bytes.
	ChecksumSize = 8

	// EndiannessMask selects the endianness bit in the Options field
	// (0 = little-endian, 1 = big-endian).
	EndiannessMask uint16 = 0x0001

	// ReservedMask selects the Options bits reserved for future use.
	// Reserved bits must be zero.
	ReservedMask uint16 = 0x000E

	// MagicNumberMask selects the magic-number bits in the Options field.
	MagicNumberMask uint16 = 0xFFF0

	// MagicTrajectoryV1 identifies trajectory envelope format v1.
	MagicTrajectoryV1 uint16 = 0x5B10
)
