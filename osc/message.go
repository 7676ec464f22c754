package osc

import (
	"fmt"
	"reflect"
	"strings"
)

// Message represents a single OSC message. An OSC message consists of an OSC
// address pattern and zero or more arguments.
//
// Text, symbol and blob Values produced by Decode borrow from the decoded
// buffer; see Value.
type Message struct {
	Address string
	Values  []Value
}

// Verify that Message implements the Packet interface.
var _ Packet = (*Message)(nil)

// NewMessage returns a new Message. The addr parameter is the OSC address.
func NewMessage(addr string, values ...Value) *Message {
	return &Message{Address: addr, Values: values}
}

// Append appends the given values to the arguments list.
func (m *Message) Append(values ...Value) {
	m.Values = append(m.Values, values...)
}

// CountValues returns the number of arguments.
func (m *Message) CountValues() int {
	return len(m.Values)
}

// Clear clears the OSC address and all arguments.
func (m *Message) Clear() {
	m.Address = ""
	m.Values = m.Values[:0]
}

// Equals returns true if the given OSC Message is equal to the current one.
func (m *Message) Equals(other *Message) bool {
	return reflect.DeepEqual(m, other)
}

// TypeTags returns the typetag string of the message, leading comma included.
func (m *Message) TypeTags() string {
	tags := make([]byte, 1, len(m.Values)+1)
	tags[0] = ','
	for _, v := range m.Values {
		tags = append(tags, byte(v.tag))
	}
	return byteString(tags)
}

// String implements the fmt.Stringer interface.
func (m *Message) String() string {
	if m == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.Address)
	if len(m.Values) == 0 {
		return b.String()
	}

	b.WriteByte(' ')
	b.WriteString(m.TypeTags())
	for _, v := range m.Values {
		b.WriteByte(' ')
		b.WriteString(v.String())
	}
	return b.String()
}

// EncodedSize returns the number of bytes Encode produces: the padded
// address, the padded typetag synthesized from the values, and every value
// payload. The result is always a multiple of 4.
func (m *Message) EncodedSize() int {
	n := paddedStringSize(len(m.Address)) + paddedStringSize(1+len(m.Values))
	for _, v := range m.Values {
		n += v.EncodedSize()
	}
	return n
}

// Encode serializes the message into b with the following layout:
// 1. OSC Address Pattern
// 2. OSC Type Tag String
// 3. OSC Arguments
// It returns the total number of bytes written.
func (m *Message) Encode(b []byte) (int, error) {
	n, err := writePaddedString(m.Address, b)
	if err != nil {
		return 0, fmt.Errorf("Encode: %w", err)
	}

	// Synthesize the typetag string with its leading comma.
	tagLen := 1 + len(m.Values)
	padded := paddedStringSize(tagLen)
	if len(b)-n < padded {
		return 0, fmt.Errorf("Encode: %w", ErrBufferTooSmall)
	}
	b[n] = ','
	for i, v := range m.Values {
		if !v.tag.Valid() {
			return 0, fmt.Errorf("Encode: value %d: %w", i, ErrInvalidType)
		}
		b[n+1+i] = byte(v.tag)
	}
	for i := n + tagLen; i < n+padded; i++ {
		b[i] = 0
	}
	n += padded

	for i, v := range m.Values {
		nn, err := v.Encode(b[n:])
		if err != nil {
			return 0, fmt.Errorf("Encode: value %d: %w", i, err)
		}
		n += nn
	}
	return n, nil
}

// Decode deserializes one message frame from data and returns the number of
// bytes consumed. The address and any text or blob values alias data, so the
// message is only valid while data stays unmodified.
func (m *Message) Decode(data []byte) (int, error) {
	if len(data) == 0 || data[0] != '/' {
		return 0, fmt.Errorf("Decode: %w", ErrInvalidAddress)
	}

	addr, consumed, err := parsePaddedString(data)
	if err != nil {
		return 0, fmt.Errorf("Decode: %w", err)
	}
	m.Address = byteString(addr)
	m.Values = m.Values[:0]

	// The typetag string may be absent entirely.
	if consumed == len(data) {
		return consumed, nil
	}

	tags, n, err := parsePaddedString(data[consumed:])
	if err != nil {
		return 0, fmt.Errorf("Decode: typetag: %w", err)
	}
	consumed += n

	if len(tags) == 0 || tags[0] != ',' {
		return 0, fmt.Errorf("Decode: %q: %w", tags, ErrInvalidTypetag)
	}

	for _, c := range tags[1:] {
		v, n, err := decodeValue(TypeTag(c), data[consumed:])
		if err != nil {
			return 0, fmt.Errorf("Decode: %w", err)
		}
		m.Values = append(m.Values, v)
		consumed += n
	}
	return consumed, nil
}

// DecodeMessage is the low level message decoder. It validates and walks one
// message frame in data and returns the number of values seen and the number
// of bytes consumed.
//
// Every output is optional. A nil addr or typetag pointer and a nil vals
// slice still validate and advance the offset without storing anything, which
// makes DecodeMessage usable for scan-only traversal (bundle decoding uses it
// to step over an element without materializing it). When vals is non-nil,
// decoded values are stored in order and ErrNotEnoughValues is returned once
// len(vals) is exhausted.
//
// Marker tags (T, F, N, I) consume no wire bytes but do occupy one output
// slot each, so a decoded message round-trips through Encode unchanged.
func DecodeMessage(data []byte, addr, typetag *[]byte, vals []Value) (nvals, consumed int, err error) {
	a, consumed, err := parsePaddedString(data)
	if err != nil {
		return 0, 0, fmt.Errorf("DecodeMessage: %w", err)
	}
	if addr != nil {
		*addr = a
	}

	if consumed == len(data) {
		return 0, consumed, nil
	}

	tags, n, err := parsePaddedString(data[consumed:])
	if err != nil {
		return 0, consumed, fmt.Errorf("DecodeMessage: typetag: %w", err)
	}
	consumed += n
	if typetag != nil {
		*typetag = tags
	}

	if len(tags) == 0 || tags[0] != ',' {
		return 0, consumed, fmt.Errorf("DecodeMessage: %q: %w", tags, ErrInvalidTypetag)
	}

	for _, c := range tags[1:] {
		tag := TypeTag(c)
		if !tag.Valid() {
			return nvals, consumed, fmt.Errorf("DecodeMessage: %q: %w", c, ErrInvalidType)
		}
		if vals != nil && nvals >= len(vals) {
			return nvals, consumed, fmt.Errorf("DecodeMessage: %w", ErrNotEnoughValues)
		}
		v, n, err := decodeValue(tag, data[consumed:])
		if err != nil {
			return nvals, consumed, fmt.Errorf("DecodeMessage: %w", err)
		}
		if vals != nil {
			vals[nvals] = v
		}
		nvals++
		consumed += n
	}
	return nvals, consumed, nil
}
