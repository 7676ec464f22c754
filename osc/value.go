package osc

import (
	"encoding/binary"
	"fmt"
	"math"
)

// RGBA is the payload of a 'r' (32-bit RGBA color) argument.
type RGBA struct {
	R, G, B, A byte
}

// MIDIMessage is the payload of a 'm' (4-byte MIDI message) argument:
// port id, status byte, data1, data2.
type MIDIMessage struct {
	Port, Status, Data1, Data2 byte
}

// Value is a single OSC argument. It is a closed tagged variant over the 15
// OSC types: the tag selects which accessor is meaningful. Values are
// immutable after construction; encode and decode never modify a Value, only
// the target buffer.
//
// Text, symbol and blob Values decoded from a buffer BORROW their bytes from
// that buffer. They stay valid only as long as the buffer is neither modified
// nor released; copy the payload out if it must outlive the buffer.
type Value struct {
	tag TypeTag
	num uint64 // scalar payload in wire bit pattern
	str []byte // borrowed payload for string, symbol and blob
}

// Int32 returns a Value holding a 32-bit signed integer.
func Int32(v int32) Value {
	return Value{tag: TypeInt32, num: uint64(uint32(v))}
}

// Float32 returns a Value holding a 32-bit float.
func Float32(v float32) Value {
	return Value{tag: TypeFloat32, num: uint64(math.Float32bits(v))}
}

// String returns a Value holding OSC string text. The Value borrows the
// string's bytes.
func String(s string) Value {
	return Value{tag: TypeString, str: stringBytes(s)}
}

// Symbol returns a Value holding alternate string text ('S').
func Symbol(s string) Value {
	return Value{tag: TypeSymbol, str: stringBytes(s)}
}

// Blob returns a Value holding an opaque byte blob. The Value borrows b.
func Blob(b []byte) Value {
	return Value{tag: TypeBlob, str: b}
}

// Int64 returns a Value holding a 64-bit signed integer.
func Int64(v int64) Value {
	return Value{tag: TypeInt64, num: uint64(v)}
}

// TimetagValue returns a Value holding an OSC time tag.
func TimetagValue(t Timetag) Value {
	return Value{tag: TypeTimetag, num: uint64(t)}
}

// Float64 returns a Value holding a 64-bit float.
func Float64(v float64) Value {
	return Value{tag: TypeFloat64, num: math.Float64bits(v)}
}

// Char returns a Value holding a 32-bit character code.
func Char(r rune) Value {
	return Value{tag: TypeChar, num: uint64(uint32(r))}
}

// Color returns a Value holding a 32-bit RGBA color.
func Color(c RGBA) Value {
	return Value{tag: TypeColor, num: uint64(c.R)<<24 | uint64(c.G)<<16 | uint64(c.B)<<8 | uint64(c.A)}
}

// MIDI returns a Value holding a 4-byte MIDI message.
func MIDI(m MIDIMessage) Value {
	return Value{tag: TypeMIDI, num: uint64(m.Port)<<24 | uint64(m.Status)<<16 | uint64(m.Data1)<<8 | uint64(m.Data2)}
}

// Bool returns a zero-width true or false marker Value.
func Bool(v bool) Value {
	if v {
		return Value{tag: TypeTrue}
	}
	return Value{tag: TypeFalse}
}

// Nil returns the zero-width nil marker Value.
func Nil() Value {
	return Value{tag: TypeNil}
}

// Infinitum returns the zero-width infinitum marker Value.
func Infinitum() Value {
	return Value{tag: TypeInfinitum}
}

// Tag returns the type tag of the Value.
func (v Value) Tag() TypeTag {
	return v.tag
}

// Int32 returns the 32-bit integer payload.
func (v Value) Int32() int32 {
	return int32(uint32(v.num))
}

// Float32 returns the 32-bit float payload.
func (v Value) Float32() float32 {
	return math.Float32frombits(uint32(v.num))
}

// Text returns the string or symbol payload. The result aliases the buffer
// the Value was decoded from.
func (v Value) Text() string {
	return byteString(v.str)
}

// Bytes returns the blob payload. The result aliases the buffer the Value was
// decoded from.
func (v Value) Bytes() []byte {
	return v.str
}

// Int64 returns the 64-bit integer payload.
func (v Value) Int64() int64 {
	return int64(v.num)
}

// Timetag returns the time tag payload.
func (v Value) Timetag() Timetag {
	return Timetag(v.num)
}

// Float64 returns the 64-bit float payload.
func (v Value) Float64() float64 {
	return math.Float64frombits(v.num)
}

// Char returns the 32-bit character payload.
func (v Value) Char() rune {
	return rune(uint32(v.num))
}

// Color returns the RGBA color payload.
func (v Value) Color() RGBA {
	return RGBA{R: byte(v.num >> 24), G: byte(v.num >> 16), B: byte(v.num >> 8), A: byte(v.num)}
}

// MIDI returns the MIDI message payload.
func (v Value) MIDI() MIDIMessage {
	return MIDIMessage{Port: byte(v.num >> 24), Status: byte(v.num >> 16), Data1: byte(v.num >> 8), Data2: byte(v.num)}
}

// Bool returns true for the 'T' marker and false otherwise.
func (v Value) Bool() bool {
	return v.tag == TypeTrue
}

// EncodedSize returns the number of bytes Encode produces for the Value. It
// is pure and kept in lockstep with Encode.
func (v Value) EncodedSize() int {
	switch v.tag {
	case TypeInt32, TypeFloat32, TypeChar, TypeColor, TypeMIDI:
		return bit32Size
	case TypeInt64, TypeTimetag, TypeFloat64:
		return bit64Size
	case TypeString, TypeSymbol:
		return paddedStringSize(len(v.str))
	case TypeBlob:
		return bit32Size + paddedBlobSize(len(v.str))
	}
	// Markers carry no payload bytes.
	return 0
}

// Encode writes the big-endian wire form of the Value into b and returns the
// number of bytes written.
func (v Value) Encode(b []byte) (int, error) {
	switch v.tag {
	case TypeInt32, TypeFloat32, TypeChar, TypeColor, TypeMIDI:
		if len(b) < bit32Size {
			return 0, fmt.Errorf("Encode %s: %w", v.tag, ErrBufferTooSmall)
		}
		binary.BigEndian.PutUint32(b, uint32(v.num))
		return bit32Size, nil

	case TypeInt64, TypeTimetag, TypeFloat64:
		if len(b) < bit64Size {
			return 0, fmt.Errorf("Encode %s: %w", v.tag, ErrBufferTooSmall)
		}
		binary.BigEndian.PutUint64(b, v.num)
		return bit64Size, nil

	case TypeString, TypeSymbol:
		return writePaddedString(byteString(v.str), b)

	case TypeBlob:
		return writeBlob(v.str, b)

	case TypeTrue, TypeFalse, TypeNil, TypeInfinitum:
		return 0, nil
	}
	return 0, fmt.Errorf("Encode: %w", ErrInvalidType)
}

// decodeValue reads one value of the given tag from data. Text, symbol and
// blob payloads alias data.
func decodeValue(tag TypeTag, data []byte) (Value, int, error) {
	switch tag {
	case TypeInt32, TypeFloat32, TypeChar, TypeColor, TypeMIDI:
		if len(data) < bit32Size {
			return Value{}, 0, fmt.Errorf("decodeValue %s: %w", tag, ErrTruncated)
		}
		return Value{tag: tag, num: uint64(binary.BigEndian.Uint32(data))}, bit32Size, nil

	case TypeInt64, TypeTimetag, TypeFloat64:
		if len(data) < bit64Size {
			return Value{}, 0, fmt.Errorf("decodeValue %s: %w", tag, ErrTruncated)
		}
		return Value{tag: tag, num: binary.BigEndian.Uint64(data)}, bit64Size, nil

	case TypeString, TypeSymbol:
		s, n, err := parsePaddedString(data)
		if err != nil {
			return Value{}, 0, fmt.Errorf("decodeValue %s: %w", tag, err)
		}
		return Value{tag: tag, str: s}, n, nil

	case TypeBlob:
		b, n, err := parseBlob(data)
		if err != nil {
			return Value{}, 0, err
		}
		return Value{tag: tag, str: b}, n, nil

	case TypeTrue, TypeFalse, TypeNil, TypeInfinitum:
		return Value{tag: tag}, 0, nil
	}
	return Value{}, 0, fmt.Errorf("decodeValue %q: %w", byte(tag), ErrInvalidType)
}

// String implements the fmt.Stringer interface.
func (v Value) String() string {
	switch v.tag {
	case TypeInt32:
		return fmt.Sprintf("%d", v.Int32())
	case TypeFloat32:
		return fmt.Sprintf("%g", v.Float32())
	case TypeString, TypeSymbol:
		return v.Text()
	case TypeBlob:
		return fmt.Sprintf("blob[%d]", len(v.str))
	case TypeInt64:
		return fmt.Sprintf("%d", v.Int64())
	case TypeTimetag:
		return fmt.Sprintf("%d", uint64(v.num))
	case TypeFloat64:
		return fmt.Sprintf("%g", v.Float64())
	case TypeChar:
		return fmt.Sprintf("%q", v.Char())
	case TypeColor:
		c := v.Color()
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	case TypeMIDI:
		m := v.MIDI()
		return fmt.Sprintf("midi(%d,%d,%d,%d)", m.Port, m.Status, m.Data1, m.Data2)
	case TypeTrue:
		return "True"
	case TypeFalse:
		return "False"
	case TypeNil:
		return "Nil"
	case TypeInfinitum:
		return "Infinitum"
	}
	return "invalid"
}
