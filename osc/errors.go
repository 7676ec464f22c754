package osc

import "errors"

// Errors returned by the codec. Encode and decode failures wrap one of these
// sentinels, so callers can classify them with errors.Is.
var (
	// ErrBufferTooSmall is returned when the destination buffer cannot hold
	// the encoded form.
	ErrBufferTooSmall = errors.New("osc: buffer too small")

	// ErrInvalidString is returned when a decoded OSC string has no
	// terminating zero byte within the buffer.
	ErrInvalidString = errors.New("osc: string missing terminating zero")

	// ErrInvalidTypetag is returned when a decoded typetag string does not
	// begin with ','.
	ErrInvalidTypetag = errors.New("osc: typetag missing leading comma")

	// ErrInvalidType is returned when a typetag character has no known type
	// mapping.
	ErrInvalidType = errors.New("osc: unknown typetag")

	// ErrInvalidAddress is returned when a message address does not begin
	// with '/'.
	ErrInvalidAddress = errors.New("osc: address must begin with '/'")

	// ErrNotEnoughValues is returned by DecodeMessage when the supplied value
	// slice fills up before the typetag is exhausted.
	ErrNotEnoughValues = errors.New("osc: not enough value slots")

	// ErrMissingBundleIdentifier is returned when bundle decoding is invoked
	// on bytes that do not start with the "#bundle" identifier.
	ErrMissingBundleIdentifier = errors.New("osc: missing #bundle identifier")

	// ErrTruncated is returned when the input ends before a complete atom,
	// message, or bundle element could be decoded.
	ErrTruncated = errors.New("osc: truncated packet")

	// ErrMaxDepth is returned when bundle nesting exceeds the depth limit
	// given to ParsePacketDepth.
	ErrMaxDepth = errors.New("osc: bundle nesting too deep")
)
