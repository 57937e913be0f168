// Package image serves reads from a raw Game Boy address-space dump,
// e.g. one captured from an emulator save state.
package image

import (
	"fmt"
	"os"

	"redscope/internal/app/ports"
)

// Source is an immutable byte image positioned at a base bus address.
type Source struct {
	base uint16
	data []byte
}

// New wraps a dump whose first byte sits at the given bus address. A
// full 64 KiB bus image uses base 0.
func New(data []byte, base uint16) *Source {
	return &Source{base: base, data: data}
}

// NewFromFile loads a dump from disk.
func NewFromFile(path string, base uint16) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load memory image: %w", err)
	}
	return New(data, base), nil
}

func (s *Source) ReadByte(addr uint16) (byte, error) {
	idx := int(addr) - int(s.base)
	if idx < 0 || idx >= len(s.data) {
		return 0, fmt.Errorf("address 0x%04X outside image: %w", addr, ports.ErrMemoryRead)
	}
	return s.data[idx], nil
}

func (s *Source) ReadRange(start, end uint16) ([]byte, error) {
	if end < start {
		return nil, fmt.Errorf("range 0x%04X-0x%04X inverted: %w", start, end, ports.ErrMemoryRead)
	}
	lo := int(start) - int(s.base)
	hi := int(end) - int(s.base)
	if lo < 0 || hi > len(s.data) {
		return nil, fmt.Errorf("range 0x%04X-0x%04X outside image: %w", start, end, ports.ErrMemoryRead)
	}
	out := make([]byte, hi-lo)
	copy(out, s.data[lo:hi])
	return out, nil
}

var _ ports.MemorySource = (*Source)(nil)
