package yaz0

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Decompress decodes a complete Yaz0 frame from src.
// Bytes after the end of the token stream are ignored; use DecompressBlock
// when the caller needs to know where the frame ends.
func Decompress(src []byte) ([]byte, error) {
	out, _, err := DecompressBlock(src)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// DecompressBlock decodes one Yaz0 frame from the beginning of src.
// It returns the decompressed bytes and the number of input bytes consumed
// (header plus token stream), so callers can locate data following the frame.
func DecompressBlock(src []byte) ([]byte, int, error) {
	hdr, err := ParseHeader(src)
	if err != nil {
		return nil, 0, err
	}

	reader := &sliceByteReader{data: src[HeaderSize:]}
	out, err := inflate(reader, int(hdr.DecompressedSize))
	if err != nil {
		return nil, HeaderSize + reader.pos, err
	}

	return out, HeaderSize + reader.pos, nil
}

// DecompressFromReader decodes one Yaz0 frame from r and returns consumed bytes.
// Reading stops at the end of the token stream, not at EOF, so r can carry
// further data after the frame.
func DecompressFromReader(r io.Reader) ([]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}

	var byteReader io.ByteReader
	if existing, ok := r.(io.ByteReader); ok {
		byteReader = existing
	} else {
		byteReader = bufio.NewReader(r)
	}

	counting := &countingByteReader{base: byteReader}

	hdrBytes := make([]byte, HeaderSize)
	for i := range hdrBytes {
		b, err := counting.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, counting.count, fmt.Errorf("%w: header needs %d bytes, have %d", ErrTruncated, HeaderSize, i)
			}

			return nil, counting.count, err
		}
		hdrBytes[i] = b
	}

	hdr, err := ParseHeader(hdrBytes)
	if err != nil {
		return nil, counting.count, err
	}

	out, err := inflate(counting, int(hdr.DecompressedSize))
	if err != nil {
		return nil, counting.count, err
	}

	return out, counting.count, nil
}

// inflate expands a token stream into a buffer of exactly outLen bytes.
func inflate(r io.ByteReader, outLen int) ([]byte, error) {
	out := make([]byte, outLen)
	pos := 0

	readByte := func() (byte, error) {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, fmt.Errorf("%w: token stream ends at output byte %d of %d", ErrTruncated, pos, outLen)
			}

			return 0, err
		}

		return b, nil
	}

	for pos < outLen {
		control, err := readByte()
		if err != nil {
			return nil, err
		}

		// One bit per token, most significant first. Trailing bits of a
		// partial final group carry no tokens: decoding stops by declared
		// size, not by bit count.
		for bit := 0; bit < GroupSize && pos < outLen; bit++ {
			if control&(0x80>>bit) != 0 {
				b, err := readByte()
				if err != nil {
					return nil, err
				}

				out[pos] = b
				pos++

				continue
			}

			b1, err := readByte()
			if err != nil {
				return nil, err
			}
			b2, err := readByte()
			if err != nil {
				return nil, err
			}

			// Low 12 bits hold distance-1; the high nibble of b1 holds a
			// short length, or zero to select the 3-byte extended form.
			distance := (int(b1&0x0F)<<8 | int(b2)) + 1
			length := int(b1 >> 4)
			if length == 0 {
				extra, err := readByte()
				if err != nil {
					return nil, err
				}
				length = int(extra) + MaxMatchShort + 1
			} else {
				length += 2
			}

			if distance > pos {
				return nil, fmt.Errorf("%w: distance %d at output byte %d", ErrInvalidDistance, distance, pos)
			}
			if length > outLen-pos {
				length = outLen - pos
			}

			start := pos - distance

			// Overlapping back-ref (distance < length): must copy byte-by-byte
			// so each written byte is visible to the next read (RLE-like).
			// copy(dst, src) does not handle overlap.
			if distance < length {
				for k := 0; k < length; k++ {
					out[pos+k] = out[start+k]
				}
			} else {
				copy(out[pos:pos+length], out[start:start+length])
			}
			pos += length
		}
	}

	return out, nil
}
