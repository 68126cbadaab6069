/*
Package yaz0 implements Nintendo's Yaz0 compression container.

Frame: 16-byte header ("Yaz0" magic, big-endian decompressed size, two
reserved words), then a token stream. One control byte per 8 tokens, MSB
first; bit 1 = literal (1 byte), bit 0 = back-reference (2 or 3 bytes).
Back-reference: 12-bit backward distance (1..4096) plus a length of 3..273;
lengths 3..17 use the 2-byte form, 18..273 the 3-byte extended form.

Use Compress(src, nil) to build a frame with the full 4096-byte search window.
Use Decompress(src) to expand a frame; the expected size travels in the header.
Use DecompressBlock(src) to decode from the beginning of src and get consumed bytes.
Use DecompressFromReader(r) to decode one frame from a stream without reading to EOF.
Set CompressOptions.SearchLimit to trade compression ratio for speed.
Set CompressOptions.Progress to watch long compressions advance.

# Examples

Round-trip compress and decompress:

	enc := yaz0.Compress(data, nil)
	dec, err := yaz0.Decompress(enc)
	if err != nil {
		return err
	}
	// dec equals data

Decode one frame from a byte stream and continue from the current position:

	out, consumed, err := yaz0.DecompressFromReader(r)
	if err != nil {
		return err
	}
	_ = consumed

Compress with a bounded search window and a progress feed:

	prog := make(chan yaz0.Progress, 64)
	go func() {
		for p := range prog {
			fmt.Printf("\r%d/%d", p.Pos, p.Total)
		}
	}()
	enc := yaz0.Compress(data, &yaz0.CompressOptions{SearchLimit: 1024, Progress: prog})
	close(prog)
*/
package yaz0
