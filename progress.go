package yaz0

// Progress reports how far compression has advanced through the input.
type Progress struct {
	Pos   int // Input bytes consumed so far.
	Total int // Total input length.
}

// notify performs a non-blocking send so a slow consumer never stalls the
// encoder.
func (o *CompressOptions) notify(pos, total int) {
	if o.Progress == nil {
		return
	}

	select {
	case o.Progress <- Progress{Pos: pos, Total: total}:
	default:
	}
}
