package osc

import "fmt"

// DefaultMaxDepth is the bundle nesting limit used by ParsePacket and
// Bundle.Decode. Untrusted input can nest bundles arbitrarily deep, so the
// recursive decoders refuse to go past this many levels with ErrMaxDepth.
const DefaultMaxDepth = 32

// Packet is the interface for Message and Bundle.
type Packet interface {
	// EncodedSize returns the exact number of bytes Encode produces.
	EncodedSize() int
	// Encode serializes the packet into b and returns the number of bytes
	// written, always a multiple of 4.
	Encode(b []byte) (int, error)
}

// ParsePacket decodes data as either a Message or a Bundle, dispatching on
// the "#bundle" identifier, with bundle nesting limited to DefaultMaxDepth.
// The returned packet borrows from data.
func ParsePacket(data []byte) (Packet, error) {
	return ParsePacketDepth(data, DefaultMaxDepth)
}

// ParsePacketDepth is ParsePacket with an explicit bundle nesting limit.
func ParsePacketDepth(data []byte, maxDepth int) (Packet, error) {
	switch {
	case IsBundle(data):
		b := &Bundle{}
		if _, err := b.decode(data, maxDepth); err != nil {
			return nil, err
		}
		return b, nil

	case len(data) > 0 && data[0] == '/':
		m := &Message{}
		if _, err := m.Decode(data); err != nil {
			return nil, err
		}
		return m, nil
	}
	return nil, fmt.Errorf("ParsePacket: %w", ErrInvalidAddress)
}
