//Package osc implements a zero-copy binary codec for OpenSoundControl packets.
//
//This implementation is based on the Open Sound Control 1.0 Specification (http://opensoundcontrol.org/spec-1_0.html).
//
//Open Sound Control (OSC) is an open, transport-independent, message-based protocol developed for communication among computers,
//sound synthesizers, and other multimedia devices.
//
//Features
//
//- Supports OSC messages with the following TypeTags:
//
//	'i' (int32)
//	'f' (float32)
//	's' (string)
//	'b' ([]byte)
//	'h' (int64)
//	't' (TimeTag)
//	'd' (float64)
//	'S' (symbol)
//	'c' (character)
//	'r' (RGBA color)
//	'm' (MIDI message)
//	'T' (true)
//	'F' (false)
//	'N' (nil)
//	'I' (infinitum)
//
//- Supports OSC bundles, including TimeTags and depth-limited nesting
//
//- OSC address pattern matching for dispatch
//
//Packets
//
//The unit of transmission of OSC is an OSC Packet: a contiguous block of
//binary data whose size is always 32-bit aligned. A packet is either a
//Message or a Bundle; the two are disambiguated with IsBundle.
//
//The codec performs no I/O and owns no buffers. Encoding writes into a
//caller-supplied byte slice sized with EncodedSize; decoding reads from a
//caller-supplied slice and borrows string and blob payloads from it, so the
//slice must stay unmodified for as long as the decoded packet is referenced.
//Transports and dispatch loops are external collaborators built on top of
//these byte-buffer-in/byte-buffer-out functions and the Match predicate.
//
//Usage
//
//Encoding:
//  msg := osc.NewMessage("/osc/address", osc.Int32(111), osc.Bool(true), osc.String("hello"))
//  buf := make([]byte, msg.EncodedSize())
//  n, err := msg.Encode(buf)
//
//Decoding:
//  pkt, err := osc.ParsePacket(buf[:n])
package osc
