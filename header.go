package yaz0

import (
	"encoding/binary"
	"fmt"
)

// Header is the fixed 16-byte frame header.
type Header struct {
	// DecompressedSize is the exact byte count the token stream expands to.
	DecompressedSize uint32
	// Reserved holds the two reserved words. They carry no meaning to the
	// codec and round-trip exactly as written; some variants store alignment
	// hints here.
	Reserved [2]uint32
}

// ParseHeader reads a frame header from the start of src.
func ParseHeader(src []byte) (Header, error) {
	if len(src) < HeaderSize {
		return Header{}, fmt.Errorf("%w: header needs %d bytes, have %d", ErrTruncated, HeaderSize, len(src))
	}

	if string(src[:4]) != Magic {
		return Header{}, ErrBadMagic
	}

	return Header{
		DecompressedSize: binary.BigEndian.Uint32(src[4:8]),
		Reserved: [2]uint32{
			binary.BigEndian.Uint32(src[8:12]),
			binary.BigEndian.Uint32(src[12:16]),
		},
	}, nil
}

// Bytes serializes the header in wire order, reserved words included.
func (h Header) Bytes() [HeaderSize]byte {
	var b [HeaderSize]byte
	copy(b[:4], Magic)
	binary.BigEndian.PutUint32(b[4:8], h.DecompressedSize)
	binary.BigEndian.PutUint32(b[8:12], h.Reserved[0])
	binary.BigEndian.PutUint32(b[12:16], h.Reserved[1])

	return b
}
