package osc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueRoundTrip(t *testing.T) {
	for _, tt := range []struct {
		name string
		val  Value
		size int
	}{
		{"int32", Int32(123456789), 4},
		{"float32", Float32(2.5), 4},
		{"string", String("hello"), 8},
		{"string_aligned", String("data"), 8}, // forced zero group
		{"blob", Blob([]byte{1, 2, 3}), 8},
		{"blob_aligned", Blob([]byte{1, 2, 3, 4}), 8}, // no forced zero group
		{"int64", Int64(-9876543210), 8},
		{"timetag", TimetagValue(Timetag(16843899701025099775)), 8},
		{"float64", Float64(3.14159265358979), 8},
		{"symbol", Symbol("freq"), 8},
		{"char", Char('x'), 4},
		{"color", Color(RGBA{R: 255, G: 128, B: 0, A: 64}), 4},
		{"midi", MIDI(MIDIMessage{Port: 0, Status: 0x90, Data1: 60, Data2: 127}), 4},
		{"true", Bool(true), 0},
		{"false", Bool(false), 0},
		{"nil", Nil(), 0},
		{"infinitum", Infinitum(), 0},
	} {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.size, tt.val.EncodedSize())

			buf := make([]byte, tt.val.EncodedSize())
			n, err := tt.val.Encode(buf)
			require.NoError(t, err)
			require.Equal(t, tt.val.EncodedSize(), n)

			got, consumed, err := decodeValue(tt.val.Tag(), buf)
			require.NoError(t, err)
			assert.Equal(t, n, consumed)
			assert.Equal(t, tt.val, got)
		})
	}
}

func TestValueAccessors(t *testing.T) {
	assert.Equal(t, int32(-7), Int32(-7).Int32())
	assert.Equal(t, float32(0.5), Float32(0.5).Float32())
	assert.Equal(t, "hello", String("hello").Text())
	assert.Equal(t, []byte{9, 8}, Blob([]byte{9, 8}).Bytes())
	assert.Equal(t, int64(1<<40), Int64(1<<40).Int64())
	assert.Equal(t, Timetag(42), TimetagValue(42).Timetag())
	assert.Equal(t, 6.25, Float64(6.25).Float64())
	assert.Equal(t, "sym", Symbol("sym").Text())
	assert.Equal(t, 'q', Char('q').Char())
	assert.Equal(t, RGBA{R: 1, G: 2, B: 3, A: 4}, Color(RGBA{R: 1, G: 2, B: 3, A: 4}).Color())
	assert.Equal(t, MIDIMessage{Port: 1, Status: 2, Data1: 3, Data2: 4}, MIDI(MIDIMessage{Port: 1, Status: 2, Data1: 3, Data2: 4}).MIDI())
	assert.True(t, Bool(true).Bool())
	assert.False(t, Bool(false).Bool())
	assert.Equal(t, TypeNil, Nil().Tag())
	assert.Equal(t, TypeInfinitum, Infinitum().Tag())
}

func TestValueEncodeWire(t *testing.T) {
	for _, tt := range []struct {
		name string
		val  Value
		want []byte
	}{
		{"int32", Int32(1), []byte{0, 0, 0, 1}},
		{"float32", Float32(2.5), []byte{0x40, 0x20, 0, 0}},
		{"string", String("ab"), []byte{'a', 'b', 0, 0}},
		{"color", Color(RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}), []byte{0x11, 0x22, 0x33, 0x44}},
		{"midi", MIDI(MIDIMessage{Port: 1, Status: 0x90, Data1: 60, Data2: 100}), []byte{1, 0x90, 60, 100}},
		{"int64", Int64(1), []byte{0, 0, 0, 0, 0, 0, 0, 1}},
		{"true", Bool(true), []byte{}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, 16)
			n, err := tt.val.Encode(buf)
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf[:n])
		})
	}
}

func TestValueEncodeShortBuffer(t *testing.T) {
	for _, val := range []Value{
		Int32(1),
		Float64(1),
		String("hello"),
		Blob([]byte{1, 2, 3, 4, 5}),
	} {
		buf := make([]byte, val.EncodedSize()-1)
		_, err := val.Encode(buf)
		require.ErrorIs(t, err, ErrBufferTooSmall, "tag %s", val.Tag())
	}
}

func TestDecodeValueErrors(t *testing.T) {
	_, _, err := decodeValue(TypeString, []byte{'a', 'b', 'c', 'd'})
	require.ErrorIs(t, err, ErrInvalidString)

	_, _, err = decodeValue(TypeInt32, []byte{0, 0})
	require.ErrorIs(t, err, ErrTruncated)

	_, _, err = decodeValue(TypeTag('x'), []byte{0, 0, 0, 0})
	require.ErrorIs(t, err, ErrInvalidType)
}

func TestDecodeValueBorrows(t *testing.T) {
	buf := []byte{'h', 'i', 0, 0}
	v, _, err := decodeValue(TypeString, buf)
	require.NoError(t, err)
	require.Equal(t, "hi", v.Text())

	// The decoded text is a view into buf, not a copy.
	buf[0] = 'H'
	assert.Equal(t, "Hi", v.Text())
}

func TestMarkerEncodesNoBytes(t *testing.T) {
	for _, v := range []Value{Bool(true), Bool(false), Nil(), Infinitum()} {
		require.True(t, v.Tag().Marker())
		require.Equal(t, 0, v.EncodedSize())

		n, err := v.Encode(nil)
		require.NoError(t, err)
		require.Equal(t, 0, n)
	}
}
