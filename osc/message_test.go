package osc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type messageTestCase struct {
	name string
	msg  *Message
	raw  []byte
}

var messageTestCases = []messageTestCase{
	{
		"no_arguments",
		NewMessage("/a"),
		[]byte("/a\x00\x00,\x00\x00\x00"),
	},
	{
		"int_and_string",
		NewMessage("/foo", Int32(1), String("hello")),
		[]byte("/foo\x00\x00\x00\x00,is\x00\x00\x00\x00\x01hello\x00\x00\x00"),
	},
	{
		"markers_consume_no_bytes",
		NewMessage("/m", Bool(true), Nil(), Int32(5)),
		[]byte("/m\x00\x00,TNi\x00\x00\x00\x00\x00\x00\x00\x05"),
	},
	{
		"blob_aligned",
		NewMessage("/b", Blob([]byte{1, 2, 3, 4})),
		[]byte("/b\x00\x00,b\x00\x00\x00\x00\x00\x04\x01\x02\x03\x04"),
	},
	{
		"extended_types",
		NewMessage("/x", Symbol("sym"), Char('A'), Infinitum()),
		[]byte("/x\x00\x00,ScI\x00\x00\x00\x00sym\x00\x00\x00\x00A"),
	},
}

func TestMessage_Encode(t *testing.T) {
	for _, tt := range messageTestCases {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, tt.msg.EncodedSize())
			n, err := tt.msg.Encode(buf)
			require.NoError(t, err)
			require.Equal(t, len(tt.raw), n)
			require.Equal(t, tt.msg.EncodedSize(), n)
			assert.Zero(t, n%4, "message length must be 32-bit aligned")
			assert.Equal(t, tt.raw, buf[:n])
		})
	}
}

func TestMessage_Decode(t *testing.T) {
	for _, tt := range messageTestCases {
		t.Run(tt.name, func(t *testing.T) {
			m := new(Message)
			n, err := m.Decode(tt.raw)
			require.NoError(t, err)
			require.Equal(t, len(tt.raw), n)
			assert.Equal(t, tt.msg.Address, m.Address)
			assert.Equal(t, len(tt.msg.Values), len(m.Values))
			for i := range tt.msg.Values {
				assert.Equal(t, tt.msg.Values[i], m.Values[i])
			}
		})
	}
}

func TestMessage_DecodeErrors(t *testing.T) {
	for _, tt := range []struct {
		name string
		raw  []byte
		err  error
	}{
		{"no_slash", []byte("foo\x00,\x00\x00\x00"), ErrInvalidAddress},
		{"empty", nil, ErrInvalidAddress},
		{"missing_comma", []byte("/foo\x00\x00\x00\x00is\x00\x00"), ErrInvalidTypetag},
		{"unknown_type", []byte("/foo\x00\x00\x00\x00,iz\x00\x00\x00\x00\x01"), ErrInvalidType},
		{"unterminated_address", []byte("/foo"), ErrInvalidString},
		{"truncated_argument", []byte("/foo\x00\x00\x00\x00,i\x00\x00\x00\x01"), ErrTruncated},
	} {
		t.Run(tt.name, func(t *testing.T) {
			m := new(Message)
			_, err := m.Decode(tt.raw)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestMessage_EncodeShortBuffer(t *testing.T) {
	msg := NewMessage("/foo", Int32(1), String("hello"))
	for size := 0; size < msg.EncodedSize(); size += 4 {
		_, err := msg.Encode(make([]byte, size))
		require.ErrorIs(t, err, ErrBufferTooSmall, "size %d", size)
	}
}

func TestMessage_DecodeWithoutTypetag(t *testing.T) {
	// An address with no typetag string at all is a valid message.
	m := new(Message)
	n, err := m.Decode([]byte("/ok\x00"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "/ok", m.Address)
	assert.Empty(t, m.Values)
}

func TestDecodeMessage(t *testing.T) {
	raw := []byte("/foo\x00\x00\x00\x00,is\x00\x00\x00\x00\x01hello\x00\x00\x00")

	var addr, typetag []byte
	vals := make([]Value, 2)
	nvals, consumed, err := DecodeMessage(raw, &addr, &typetag, vals)
	require.NoError(t, err)
	assert.Equal(t, 2, nvals)
	assert.Equal(t, len(raw), consumed)
	assert.Equal(t, "/foo", string(addr))
	assert.Equal(t, ",is", string(typetag))
	assert.Equal(t, int32(1), vals[0].Int32())
	assert.Equal(t, "hello", vals[1].Text())
}

func TestDecodeMessageScanOnly(t *testing.T) {
	// All outputs nil: the frame is still validated and fully consumed.
	raw := []byte("/foo\x00\x00\x00\x00,is\x00\x00\x00\x00\x01hello\x00\x00\x00")
	nvals, consumed, err := DecodeMessage(raw, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, nvals)
	assert.Equal(t, len(raw), consumed)
}

func TestDecodeMessageNotEnoughValues(t *testing.T) {
	raw := []byte("/foo\x00\x00\x00\x00,is\x00\x00\x00\x00\x01hello\x00\x00\x00")
	vals := make([]Value, 1)
	_, _, err := DecodeMessage(raw, nil, nil, vals)
	require.ErrorIs(t, err, ErrNotEnoughValues)
}

func TestMessageRoundTrip(t *testing.T) {
	msg := NewMessage("/composition/layers/1/clips/1/transport/position",
		Float32(0.123456789),
		String("hello world"),
		Int64(1<<40),
		Float64(2.718281828),
		Blob([]byte{0xde, 0xad, 0xbe, 0xef}),
		TimetagValue(Timetag(16843899701025099775)),
		Color(RGBA{R: 10, G: 20, B: 30, A: 40}),
		MIDI(MIDIMessage{Port: 0, Status: 0x80, Data1: 64, Data2: 0}),
		Bool(true),
		Bool(false),
		Nil(),
		Infinitum(),
	)

	buf := make([]byte, msg.EncodedSize())
	produced, err := msg.Encode(buf)
	require.NoError(t, err)
	require.Equal(t, msg.EncodedSize(), produced)

	got := new(Message)
	consumed, err := got.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, produced, consumed)
	assert.True(t, msg.Equals(got), "decoded message differs:\n got %v\nwant %v", got, msg)
}

func TestMessage_TypeTags(t *testing.T) {
	msg := NewMessage("/t", Int32(1), Bool(true), String("x"), Nil())
	assert.Equal(t, ",iTsN", msg.TypeTags())
	assert.Equal(t, ",", NewMessage("/t").TypeTags())
}

func TestMessage_String(t *testing.T) {
	assert.Equal(t, "/foo ,is 1 hello", NewMessage("/foo", Int32(1), String("hello")).String())
	assert.Equal(t, "/foo", NewMessage("/foo").String())
	assert.Equal(t, "", (*Message)(nil).String())
}

func TestMessage_AppendClear(t *testing.T) {
	msg := NewMessage("/address")
	msg.Append(String("string argument"), Int32(123456789), Bool(true))
	require.Equal(t, 3, msg.CountValues())

	msg.Clear()
	assert.Equal(t, "", msg.Address)
	assert.Zero(t, msg.CountValues())
}
