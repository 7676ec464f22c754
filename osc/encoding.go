package osc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unsafe"
)

////
// De/Encoding functions
////

const (
	bit32Size = 4
	bit64Size = 8
)

// padBytesNeeded determines how many bytes are needed to fill up to the next
// 4 byte length.
func padBytesNeeded(elementLen int) int {
	return (4 - (elementLen % 4)) % 4
}

// paddedStringSize returns the encoded size of an OSC string of length n.
// OSC strings always carry at least one terminating zero, so a string whose
// length is already a multiple of 4 still grows by a full zero group.
func paddedStringSize(n int) int {
	return 4 * (1 + n/4)
}

// paddedBlobSize returns the encoded size of the payload of an OSC blob of
// length n, excluding the length prefix. Unlike strings, blobs get no forced
// extra zero group when n is already 32-bit aligned.
func paddedBlobSize(n int) int {
	return 4 * ((n + 3) / 4)
}

// parsePaddedString reads a padded OSC string from data and returns a view of
// its bytes and the number of bytes consumed. The returned slice aliases
// data.
func parsePaddedString(data []byte) ([]byte, int, error) {
	pos := bytes.IndexByte(data, 0)
	if pos == -1 {
		return nil, 0, ErrInvalidString
	}
	n := pos + 1 + padBytesNeeded(pos+1)
	if n > len(data) {
		return nil, 0, fmt.Errorf("parsePaddedString: padding: %w", ErrTruncated)
	}
	return data[:pos], n, nil
}

// writePaddedString writes str with terminating zero and padding bytes into b
// and returns the number of bytes written.
func writePaddedString(str string, b []byte) (int, error) {
	n := paddedStringSize(len(str))
	if len(b) < n {
		return 0, fmt.Errorf("writePaddedString: %w", ErrBufferTooSmall)
	}
	copy(b, str)
	for i := len(str); i < n; i++ {
		b[i] = 0
	}
	return n, nil
}

// parseBlob reads an OSC blob from data and returns a view of its payload and
// the number of bytes consumed, padding included. The returned slice aliases
// data.
func parseBlob(data []byte) ([]byte, int, error) {
	if len(data) < bit32Size {
		return nil, 0, fmt.Errorf("parseBlob: %w", ErrTruncated)
	}
	blobLen := int(int32(binary.BigEndian.Uint32(data)))
	if blobLen < 0 || blobLen > len(data)-bit32Size {
		return nil, 0, fmt.Errorf("parseBlob: invalid blob length %d: %w", blobLen, ErrTruncated)
	}
	// Padding is computed on the raw length, not the prefixed one.
	n := bit32Size + paddedBlobSize(blobLen)
	if n > len(data) {
		return nil, 0, fmt.Errorf("parseBlob: padding: %w", ErrTruncated)
	}
	return data[bit32Size : bit32Size+blobLen], n, nil
}

// writeBlob writes data as an OSC blob into b. If the length of data isn't
// 32-bit aligned, padding bytes are added.
func writeBlob(data []byte, b []byte) (int, error) {
	n := bit32Size + paddedBlobSize(len(data))
	if len(b) < n {
		return 0, fmt.Errorf("writeBlob: %w", ErrBufferTooSmall)
	}
	binary.BigEndian.PutUint32(b, uint32(len(data)))
	copy(b[bit32Size:], data)
	for i := bit32Size + len(data); i < n; i++ {
		b[i] = 0
	}
	return n, nil
}

// byteString reinterprets b as a string without copying. The result is only
// valid as long as b is unmodified.
func byteString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// stringBytes reinterprets s as a byte slice without copying. The result must
// not be written to.
func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
