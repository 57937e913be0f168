// Package mock provides a map-backed memory source for tests and for
// running the server without a memory image attached.
package mock

import (
	"fmt"

	"redscope/internal/app/ports"
)

// Source returns the configured byte per address and zero elsewhere.
// Addresses listed in Fail error out, for exercising fallback paths.
type Source struct {
	Bytes map[uint16]byte
	Fail  map[uint16]bool
}

func New() *Source {
	return &Source{Bytes: map[uint16]byte{}, Fail: map[uint16]bool{}}
}

func (s *Source) Set(addr uint16, value byte) *Source {
	s.Bytes[addr] = value
	return s
}

func (s *Source) SetRange(start uint16, values []byte) *Source {
	for i, v := range values {
		s.Bytes[start+uint16(i)] = v
	}
	return s
}

func (s *Source) FailAt(addr uint16) *Source {
	s.Fail[addr] = true
	return s
}

func (s *Source) ReadByte(addr uint16) (byte, error) {
	if s.Fail[addr] {
		return 0, fmt.Errorf("injected failure at 0x%04X: %w", addr, ports.ErrMemoryRead)
	}
	return s.Bytes[addr], nil
}

func (s *Source) ReadRange(start, end uint16) ([]byte, error) {
	if end < start {
		return nil, fmt.Errorf("range 0x%04X-0x%04X inverted: %w", start, end, ports.ErrMemoryRead)
	}
	out := make([]byte, 0, end-start)
	for addr := start; addr != end; addr++ {
		b, err := s.ReadByte(addr)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

var _ ports.MemorySource = (*Source)(nil)
