package yaz0

import "fmt"

// CompressOptions configures compression (search depth and progress reporting).
type CompressOptions struct {
	// SearchLimit caps how far back the match finder looks.
	// 0 = literals only; values above WindowSize are clamped to WindowSize.
	SearchLimit int
	// Progress, when non-nil, receives read-head positions as compression
	// advances. Sends never block; updates are dropped when the channel is
	// full. Compress does not close the channel.
	Progress chan<- Progress
}

// DefaultCompressOptions returns options for a full-window search with no
// progress reporting.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{
		SearchLimit: WindowSize,
	}
}

// Compress encodes src as a complete Yaz0 frame. Options nil means
// DefaultCompressOptions(). Compression is total: every input, including an
// empty one, yields a valid frame, and identical input yields byte-identical
// output.
func Compress(src []byte, opts *CompressOptions) []byte {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	limit := opts.SearchLimit
	if limit < 0 {
		limit = 0
	}
	if limit > WindowSize {
		limit = WindowSize
	}

	hdr := Header{DecompressedSize: uint32(len(src))} // #nosec G115 -- input buffers are bounded by the u32 size field
	hdrBytes := hdr.Bytes()

	// Pre-allocate for the all-literal worst case: one control byte per 8
	// input bytes; back-references only shrink that.
	out := make([]byte, 0, HeaderSize+len(src)+(len(src)+GroupSize-1)/GroupSize)
	out = append(out, hdrBytes[:]...)

	var control byte
	tokens := 0
	// Payload arena for the current group: 8 tokens * 3 bytes worst case.
	group := make([]byte, 0, GroupSize*3)

	flushGroup := func() {
		out = append(out, control)
		out = append(out, group...)
		control = 0
		tokens = 0
		group = group[:0]
	}

	i := 0
	for i < len(src) {
		length, distance := findMatch(src, i, limit)

		if length >= MinMatch {
			if length > MaxMatch || distance < 1 || distance > WindowSize {
				panic(fmt.Sprintf("yaz0: match finder produced length=%d distance=%d", length, distance))
			}

			code := uint16(distance - 1) // #nosec G115 -- distance is 1..4096, fits 12 bits
			if length <= MaxMatchShort {
				// 2-byte form: length-2 in the high nibble, distance-1 below.
				group = append(group, byte(length-2)<<4|byte(code>>8), byte(code))
			} else {
				// 3-byte form: zero nibble selects it, then length-18.
				group = append(group, byte(code>>8), byte(code), byte(length-MaxMatchShort-1))
			}
			i += length
		} else {
			control |= 0x80 >> tokens
			group = append(group, src[i])
			i++
		}

		tokens++
		if tokens == GroupSize {
			flushGroup()
		}
		opts.notify(i, len(src))
	}

	if tokens > 0 {
		flushGroup()
	}

	return out
}

// findMatch returns the longest back-reference available at position i,
// looking back at most limit bytes. Ties prefer the smallest distance, which
// keeps the output deterministic. Length 0 means no usable match.
func findMatch(src []byte, i, limit int) (length, distance int) {
	remaining := len(src) - i
	if remaining < MinMatch || limit == 0 {
		return 0, 0
	}

	maxLen := remaining
	if maxLen > MaxMatch {
		maxLen = MaxMatch
	}

	start := i - limit
	if start < 0 {
		start = 0
	}

	// Nearest candidate first, so an equal-length match never replaces a
	// closer one.
	for j := i - 1; j >= start; j-- {
		if src[j] != src[i] {
			continue
		}

		// Matches may run past i: the decoder copies from output it has
		// already written, so an overlapping source is valid.
		n := 1
		for n < maxLen && src[j+n] == src[i+n] {
			n++
		}

		if n > length {
			length = n
			distance = i - j
			if length == maxLen {
				break
			}
		}
	}

	if length < MinMatch {
		return 0, 0
	}

	return length, distance
}
