package extract

import (
	"fmt"
	"math/bits"
	"strings"

	"redscope/internal/app/ports"
)

// memReader wraps the memory port with the small typed reads the
// parsers need.
type memReader struct {
	src ports.MemorySource
}

func (r memReader) byteAt(addr uint16) (byte, error) {
	b, err := r.src.ReadByte(addr)
	if err != nil {
		return 0, fmt.Errorf("read 0x%04X: %w", addr, err)
	}
	return b, nil
}

// u16 reads a little-endian 16-bit value (low byte first).
func (r memReader) u16(addr uint16) (int, error) {
	lo, err := r.byteAt(addr)
	if err != nil {
		return 0, err
	}
	hi, err := r.byteAt(addr + 1)
	if err != nil {
		return 0, err
	}
	return int(lo) | int(hi)<<8, nil
}

func (r memReader) rangeAt(start, end uint16) ([]byte, error) {
	b, err := r.src.ReadRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("read range 0x%04X-0x%04X: %w", start, end, err)
	}
	return b, nil
}

// playerName decodes the fixed-width, 0x50-terminated name field using
// the Gen 1 text character map.
func (r memReader) playerName() (string, error) {
	raw, err := r.rangeAt(addrPlayerName, addrPlayerName+playerNameLength)
	if err != nil {
		return "", err
	}
	return decodeGameText(raw), nil
}

func decodeGameText(raw []byte) string {
	var sb strings.Builder
	for _, b := range raw {
		switch {
		case b == 0x50:
			return sb.String()
		case b >= 0x80 && b <= 0x99:
			sb.WriteByte('A' + b - 0x80)
		case b >= 0xA0 && b <= 0xB9:
			sb.WriteByte('a' + b - 0xA0)
		case b >= 0xF6 && b <= 0xFF:
			sb.WriteByte('0' + b - 0xF6)
		case b == 0x7F:
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// eventFlagCount counts set bits across the event flag block.
func (r memReader) eventFlagCount() (int, error) {
	raw, err := r.rangeAt(addrEventFlagsStart, addrEventFlagsEnd)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, b := range raw {
		n += bits.OnesCount8(b)
	}
	return n, nil
}
