package ports

// MemorySource exposes indexed byte reads against the Game Boy address
// space of a running or saved game. Implementations carry no game
// knowledge; a failing read must wrap ErrMemoryRead so callers can pick
// their documented fallback.
type MemorySource interface {
	ReadByte(addr uint16) (byte, error)
	// ReadRange returns bytes in [start, end).
	ReadRange(start, end uint16) ([]byte, error)
}
