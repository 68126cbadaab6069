package yaz0

import (
	"bytes"
	"errors"
	"testing"
)

func TestParseHeader(t *testing.T) {
	raw := []byte{
		'Y', 'a', 'z', '0',
		0x00, 0xCC, 0x07, 0xC9, // 13371337 bytes when decompressed
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}
	hdr, err := ParseHeader(raw)
	if err != nil {
		t.Fatal(err)
	}
	if hdr.DecompressedSize != 13371337 {
		t.Fatalf("size = %d, want 13371337", hdr.DecompressedSize)
	}
}

func TestParseHeaderBadMagic(t *testing.T) {
	raw := make([]byte, HeaderSize)
	copy(raw, "Foo0")
	_, err := ParseHeader(raw)
	if !errors.Is(err, ErrBadMagic) {
		t.Fatalf("want ErrBadMagic, got %v", err)
	}
}

func TestParseHeaderTruncated(t *testing.T) {
	_, err := ParseHeader([]byte("Yaz0\x00\x00"))
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("want ErrTruncated, got %v", err)
	}
}

func TestReservedWordsRoundTrip(t *testing.T) {
	raw := []byte{
		'Y', 'a', 'z', '0',
		0x00, 0x00, 0x01, 0x00,
		0xDE, 0xAD, 0xBE, 0xEF, // some variants stash alignment hints here
		0x00, 0x00, 0xAB, 0x12,
	}
	hdr, err := ParseHeader(raw)
	if err != nil {
		t.Fatal(err)
	}
	if hdr.Reserved[0] != 0xDEADBEEF || hdr.Reserved[1] != 0x0000AB12 {
		t.Fatalf("reserved = %#x, %#x", hdr.Reserved[0], hdr.Reserved[1])
	}
	out := hdr.Bytes()
	if !bytes.Equal(out[:], raw) {
		t.Fatalf("got % x, want % x", out, raw)
	}
}

func TestCompressWritesZeroReserved(t *testing.T) {
	enc := Compress([]byte("reserved words default to zero"), nil)
	hdr, err := ParseHeader(enc)
	if err != nil {
		t.Fatal(err)
	}
	if hdr.Reserved[0] != 0 || hdr.Reserved[1] != 0 {
		t.Fatalf("reserved = %#x, %#x; want zero", hdr.Reserved[0], hdr.Reserved[1])
	}
	if int(hdr.DecompressedSize) != len("reserved words default to zero") {
		t.Fatalf("size = %d", hdr.DecompressedSize)
	}
}
