package types

import "errors"

// OptionType used to define the kind of a declared item (Standalone or Single)
type OptionType int

const (
	// Empty denotes an item which is not set
	Empty OptionType = iota
	// Single denotes an option accepting a string value
	Single
	// Standalone denotes a boolean flag (does not accept a value)
	Standalone
)

// String returns the string representation of an OptionType
func (o OptionType) String() string {
	switch o {
	case Single:
		return "single"
	case Standalone:
		return "standalone"
	case Empty:
		fallthrough
	default:
		return "empty"
	}
}

// KeyValue denotes Key Value pairs
type KeyValue[K, V any] struct {
	Key   K
	Value V
}

// Definition and parse errors. All errors returned by the library wrap one of
// these sentinels and can be matched with errors.Is.
var (
	ErrOptionRedefined    = errors.New("option cannot be redefined")
	ErrArgumentRedefined  = errors.New("argument cannot be redefined")
	ErrInvalidAlias       = errors.New("invalid alias")
	ErrUnknownOption      = errors.New("option not defined")
	ErrInvalidFlagCluster = errors.New("invalid flag cluster")
	ErrMissingValue       = errors.New("option value required")
	ErrMissingRequired    = errors.New("required options or arguments missing")
	ErrInvalidValue       = errors.New("value not accepted")
	ErrOptionRepeated     = errors.New("option specified more than once")
	ErrArgumentCount      = errors.New("argument count mismatch")
)

// Retrieval errors
var (
	ErrNotFound                  = errors.New("option not found")
	ErrArgumentNotFound          = errors.New("argument not found")
	ErrArgumentIndex             = errors.New("argument index out of bounds")
	ErrTypeMismatch              = errors.New("type mismatch")
	ErrPointerExpected           = errors.New("pointer to variable expected")
	ErrUnsupportedTypeConversion = errors.New("unsupported type conversion")
)

// Conversion errors
var (
	ErrParseBool     = errors.New("cannot parse as bool")
	ErrParseInt      = errors.New("cannot parse as int")
	ErrParseInt8     = errors.New("cannot parse as int8")
	ErrParseInt16    = errors.New("cannot parse as int16")
	ErrParseInt32    = errors.New("cannot parse as int32")
	ErrParseInt64    = errors.New("cannot parse as int64")
	ErrParseUint     = errors.New("cannot parse as uint")
	ErrParseUint8    = errors.New("cannot parse as uint8")
	ErrParseUint16   = errors.New("cannot parse as uint16")
	ErrParseUint32   = errors.New("cannot parse as uint32")
	ErrParseUint64   = errors.New("cannot parse as uint64")
	ErrParseFloat32  = errors.New("cannot parse as float32")
	ErrParseFloat64  = errors.New("cannot parse as float64")
	ErrParseTime     = errors.New("cannot parse as time")
	ErrParseDuration = errors.New("cannot parse as duration")
)
