package osc

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const bundleTagString = "#bundle"

// bundleHeaderSize is the fixed prefix of a bundle frame: the "#bundle"
// identifier (8), the timetag (8) and the first element size (4).
const bundleHeaderSize = 20

var bundleTagBytes = []byte("#bundle\x00")

// Bundle represents an OSC bundle. It consists of the OSC-string "#bundle"
// followed by an OSC Time Tag, followed by zero or more OSC bundle/message
// elements. The OSC-timetag is a 64-bit fixed point time tag. See
// http://opensoundcontrol.org/spec-1_0.html for more information.
//
// A Bundle is a view composition over its elements: it owns no storage and
// decoded elements borrow from the decode buffer.
type Bundle struct {
	Timetag  Timetag
	Elements []Packet
}

// Verify that Bundle implements the Packet interface.
var _ Packet = (*Bundle)(nil)

// NewBundle returns an OSC Bundle with the given time tag.
func NewBundle(tt Timetag, elements ...Packet) *Bundle {
	return &Bundle{Timetag: tt, Elements: elements}
}

// Append appends an OSC bundle or OSC message to the bundle.
func (b *Bundle) Append(pck Packet) error {
	switch pck.(type) {
	default:
		return fmt.Errorf("unsupported OSC packet type: only Bundle and Message are supported")

	case *Bundle, *Message:
		b.Elements = append(b.Elements, pck)
	}
	return nil
}

// IsBundle reports whether data starts with the literal "#bundle" identifier
// followed by one zero byte. It consumes nothing and is the dispatch test
// between bundle and message framing.
func IsBundle(data []byte) bool {
	return len(data) >= bit64Size && bytes.Equal(data[:bit64Size], bundleTagBytes)
}

// EncodedSize returns the number of bytes Encode produces: the identifier,
// the timetag, and a 4-byte size prefix plus payload per element.
func (b *Bundle) EncodedSize() int {
	n := bit64Size + bit64Size
	for _, e := range b.Elements {
		n += bit32Size + e.EncodedSize()
	}
	return n
}

// Encode serializes the bundle into buf with the following layout:
// 1. Bundle string: '#bundle'
// 2. OSC timetag
// 3. Length of first OSC bundle element
// 4. First bundle element
// 5. Length of n OSC bundle element
// 6. n bundle element
// It returns the total number of bytes written.
func (b *Bundle) Encode(buf []byte) (int, error) {
	n, err := writePaddedString(bundleTagString, buf)
	if err != nil {
		return 0, fmt.Errorf("Encode: %w", err)
	}

	if len(buf)-n < bit64Size {
		return 0, fmt.Errorf("Encode: %w", ErrBufferTooSmall)
	}
	binary.BigEndian.PutUint64(buf[n:], uint64(b.Timetag))
	n += bit64Size

	for _, e := range b.Elements {
		size := e.EncodedSize()
		if len(buf)-n < bit32Size+size {
			return 0, fmt.Errorf("Encode: %w", ErrBufferTooSmall)
		}
		binary.BigEndian.PutUint32(buf[n:], uint32(size))
		n += bit32Size

		nn, err := e.Encode(buf[n : n+size])
		if err != nil {
			return 0, fmt.Errorf("Encode: %w", err)
		}
		n += nn
	}
	return n, nil
}

// DecodeBundleHeader reads the fixed bundle prefix from data: the "#bundle"
// identifier, the timetag and the size of the first element. It returns the
// 20-byte header length and deliberately does not decode the element payload;
// the caller re-dispatches on the remaining bytes via IsBundle to traverse
// nesting one level at a time. Use Bundle.Decode or ParsePacket for a full
// depth-limited traversal.
func DecodeBundleHeader(data []byte) (tt Timetag, elementSize, consumed int, err error) {
	if !IsBundle(data) {
		return 0, 0, 0, fmt.Errorf("DecodeBundleHeader: %w", ErrMissingBundleIdentifier)
	}
	if len(data) < bundleHeaderSize {
		return 0, 0, 0, fmt.Errorf("DecodeBundleHeader: %w", ErrTruncated)
	}
	tt = Timetag(binary.BigEndian.Uint64(data[bit64Size:]))
	elementSize = int(int32(binary.BigEndian.Uint32(data[2*bit64Size:])))
	if elementSize < 0 || elementSize > len(data)-bundleHeaderSize {
		return 0, 0, 0, fmt.Errorf("DecodeBundleHeader: invalid element length %d: %w", elementSize, ErrTruncated)
	}
	return tt, elementSize, bundleHeaderSize, nil
}

// Decode deserializes a bundle frame from data, recursing into nested
// bundles up to DefaultMaxDepth levels, and returns the number of bytes
// consumed. Decoded elements borrow from data.
func (b *Bundle) Decode(data []byte) (int, error) {
	return b.decode(data, DefaultMaxDepth)
}

func (b *Bundle) decode(data []byte, depth int) (int, error) {
	if depth <= 0 {
		return 0, fmt.Errorf("Decode: %w", ErrMaxDepth)
	}
	if !IsBundle(data) {
		return 0, fmt.Errorf("Decode: %w", ErrMissingBundleIdentifier)
	}
	if len(data) < 2*bit64Size {
		return 0, fmt.Errorf("Decode: timetag: %w", ErrTruncated)
	}

	b.Timetag = Timetag(binary.BigEndian.Uint64(data[bit64Size:]))
	b.Elements = b.Elements[:0]

	consumed := 2 * bit64Size
	for consumed < len(data) {
		if len(data)-consumed < bit32Size {
			return 0, fmt.Errorf("Decode: element size: %w", ErrTruncated)
		}
		size := int(int32(binary.BigEndian.Uint32(data[consumed:])))
		consumed += bit32Size
		if size < 0 || size > len(data)-consumed {
			return 0, fmt.Errorf("Decode: invalid element length %d: %w", size, ErrTruncated)
		}

		elem := data[consumed : consumed+size]
		if IsBundle(elem) {
			nested := &Bundle{}
			if _, err := nested.decode(elem, depth-1); err != nil {
				return 0, err
			}
			b.Elements = append(b.Elements, nested)
		} else {
			msg := &Message{}
			if _, err := msg.Decode(elem); err != nil {
				return 0, err
			}
			b.Elements = append(b.Elements, msg)
		}
		consumed += size
	}
	return consumed, nil
}
