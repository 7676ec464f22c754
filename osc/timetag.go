package osc

import (
	"math"
	"time"
)

const secondsFrom1900To1970 = 2208988800

// TimetagImmediate is the special time tag value meaning "immediately":
// 63 zero bits followed by a one in the least significant bit.
const TimetagImmediate = Timetag(1)

// Timetag represents an OSC Time Tag.
// An OSC Time Tag is defined as follows:
// Time tags are represented by a 64 bit fixed point number. The first 32 bits
// specify the number of seconds since midnight on January 1, 1900, and the
// last 32 bits specify fractional parts of a second to a precision of about
// 200 picoseconds. This is the representation used by Internet NTP timestamps.
//
// Both conversions below are computed on demand from the raw 64-bit value;
// nothing is cached.
type Timetag uint64

// A 32.32 time tag can only express NTP era 0: 1900-01-01 up to the seconds
// counter wrapping on 2036-02-07. Conversions clamp to the era bounds.
const maxEraSeconds = 1<<32 - 1

// TimetagFromTime returns a new OSC time tag from a time.Time. Times outside
// NTP era 0 are clamped to the era bounds.
func TimetagFromTime(t time.Time) Timetag {
	secs := t.Unix() + secondsFrom1900To1970
	if secs < 0 {
		return 0
	}
	if secs > maxEraSeconds {
		return Timetag(math.MaxUint64)
	}
	frac := uint64(t.Nanosecond()) << 32 / 1e9
	return Timetag(uint64(secs)<<32 | frac)
}

// TimetagFromUnixMicro returns a new OSC time tag from a Unix-epoch
// microsecond count. Times outside NTP era 0 are clamped to the era bounds.
func TimetagFromUnixMicro(us int64) Timetag {
	secs := float64(us)/1e6 + secondsFrom1900To1970
	if secs < 0 {
		return 0
	}
	if secs >= maxEraSeconds+1 {
		return Timetag(math.MaxUint64)
	}
	hi := uint64(secs)
	frac := uint64((secs - float64(hi)) * math.MaxUint32)
	return Timetag(hi<<32 | frac)
}

// Time returns the time tag as a time.Time.
func (t Timetag) Time() time.Time {
	secs := int64(t>>32) - secondsFrom1900To1970
	ns := (t & 0xffffffff) * 1e9 >> 32
	return time.Unix(secs, int64(ns))
}

// UnixMicro returns the time tag as Unix-epoch microseconds, rounded to the
// nearest microsecond.
func (t Timetag) UnixMicro() int64 {
	secs := int64(t>>32) - secondsFrom1900To1970
	frac := float64(uint32(t)) / math.MaxUint32
	return secs*1e6 + int64(math.Round(frac*1e6))
}

// SecondsSinceEpoch returns the first 32 bits (the number of seconds since
// midnight 1900) of the OSC time tag.
func (t Timetag) SecondsSinceEpoch() uint32 {
	return uint32(t >> 32)
}

// FractionalSecond returns the last 32 bits of the OSC time tag. Specifies
// the fractional part of a second.
func (t Timetag) FractionalSecond() uint32 {
	return uint32(t)
}

// ExpiresIn calculates the duration until the current time equals the value
// of the time tag. It returns zero if the time tag is in the past or is the
// immediate value.
func (t Timetag) ExpiresIn() time.Duration {
	if t <= TimetagImmediate {
		return 0
	}

	d := time.Until(t.Time())
	if d <= 0 {
		return 0
	}
	return d
}
