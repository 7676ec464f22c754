package osc

// TypeTag identifies the wire type of a single OSC argument. The set of tags
// is fixed by the OSC 1.0 specification plus the common extended types.
type TypeTag byte

const (
	TypeInt32     TypeTag = 'i'
	TypeFloat32   TypeTag = 'f'
	TypeString    TypeTag = 's'
	TypeBlob      TypeTag = 'b'
	TypeInt64     TypeTag = 'h'
	TypeTimetag   TypeTag = 't'
	TypeFloat64   TypeTag = 'd'
	TypeSymbol    TypeTag = 'S'
	TypeChar      TypeTag = 'c'
	TypeColor     TypeTag = 'r'
	TypeMIDI      TypeTag = 'm'
	TypeTrue      TypeTag = 'T'
	TypeFalse     TypeTag = 'F'
	TypeNil       TypeTag = 'N'
	TypeInfinitum TypeTag = 'I'
	TypeInvalid   TypeTag = 0
)

// Valid reports whether t is one of the 15 recognized type tags.
func (t TypeTag) Valid() bool {
	switch t {
	case TypeInt32, TypeFloat32, TypeString, TypeBlob, TypeInt64, TypeTimetag,
		TypeFloat64, TypeSymbol, TypeChar, TypeColor, TypeMIDI,
		TypeTrue, TypeFalse, TypeNil, TypeInfinitum:
		return true
	}
	return false
}

// Marker reports whether t is one of the zero-width tags (true, false, nil,
// infinitum) whose identity is carried by the typetag string alone.
func (t TypeTag) Marker() bool {
	switch t {
	case TypeTrue, TypeFalse, TypeNil, TypeInfinitum:
		return true
	}
	return false
}

func (t TypeTag) String() string {
	if t == TypeInvalid {
		return "invalid"
	}
	return string(byte(t))
}
