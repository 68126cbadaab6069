package yaz0

// Yaz0 container constants.
const (
	Magic         = "Yaz0" // 4-byte tag at the start of every frame.
	HeaderSize    = 16     // Magic + big-endian decompressed size + two reserved words.
	WindowSize    = 4096   // Maximum backward distance of a back-reference.
	MinMatch      = 3      // Shortest back-reference worth encoding.
	MaxMatchShort = 17     // Longest length the 2-byte token form can hold.
	MaxMatch      = 273    // Longest length the 3-byte token form can hold.
	GroupSize     = 8      // Tokens per control byte (one bit each, MSB first).
)
