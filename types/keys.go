// Package types provides common type definitions for the clparse library.
// This file contains constants for all translation keys used throughout the library.
package types

// Prefix for all clparse translation keys
const (
	PrefixKey = "clparse"
)

// Key prefixes per message class
const (
	ErrorPrefixKey    = PrefixKey + ".error"
	ParseErrorPathKey = ErrorPrefixKey + ".parse"
	MessagePrefixKey  = PrefixKey + ".msg"
)

// Definition and parse error keys
const (
	ErrOptionRedefinedKey    = ErrorPrefixKey + ".option_redefined"
	ErrArgumentRedefinedKey  = ErrorPrefixKey + ".argument_redefined"
	ErrEmptyAliasesKey       = ErrorPrefixKey + ".empty_aliases"
	ErrInvalidLongAliasKey   = ErrorPrefixKey + ".invalid_long_alias"
	ErrInvalidShortAliasKey  = ErrorPrefixKey + ".invalid_short_alias"
	ErrInvalidAliasKey       = ErrorPrefixKey + ".invalid_alias"
	ErrUnknownOptionKey      = ErrorPrefixKey + ".option_not_defined"
	ErrClusterNotFlagKey     = ErrorPrefixKey + ".option_not_flag"
	ErrMissingValueKey       = ErrorPrefixKey + ".value_required"
	ErrOptionRepeatedKey     = ErrorPrefixKey + ".option_repeated"
	ErrMissingRequiredKey    = ErrorPrefixKey + ".missing_required"
	ErrInvalidValueKey       = ErrorPrefixKey + ".invalid_value"
	ErrArgumentCountKey      = ErrorPrefixKey + ".argument_count"
)

// Retrieval error keys
const (
	ErrNotFoundKey                  = ErrorPrefixKey + ".not_found"
	ErrArgumentNotFoundKey          = ErrorPrefixKey + ".argument_not_found"
	ErrArgumentIndexKey             = ErrorPrefixKey + ".argument_index"
	ErrTypeMismatchKey              = ErrorPrefixKey + ".type_mismatch"
	ErrPointerExpectedKey           = ErrorPrefixKey + ".pointer_expected"
	ErrUnsupportedTypeConversionKey = ErrorPrefixKey + ".unsupported_type_conversion"
)

// Conversion error keys
const (
	ErrParseBoolKey     = ParseErrorPathKey + ".bool"
	ErrParseIntKey      = ParseErrorPathKey + ".int"
	ErrParseInt8Key     = ParseErrorPathKey + ".int8"
	ErrParseInt16Key    = ParseErrorPathKey + ".int16"
	ErrParseInt32Key    = ParseErrorPathKey + ".int32"
	ErrParseInt64Key    = ParseErrorPathKey + ".int64"
	ErrParseUintKey     = ParseErrorPathKey + ".uint"
	ErrParseUint8Key    = ParseErrorPathKey + ".uint8"
	ErrParseUint16Key   = ParseErrorPathKey + ".uint16"
	ErrParseUint32Key   = ParseErrorPathKey + ".uint32"
	ErrParseUint64Key   = ParseErrorPathKey + ".uint64"
	ErrParseFloat32Key  = ParseErrorPathKey + ".float32"
	ErrParseFloat64Key  = ParseErrorPathKey + ".float64"
	ErrParseTimeKey     = ParseErrorPathKey + ".time"
	ErrParseDurationKey = ParseErrorPathKey + ".duration"
)

// Message keys
const (
	MsgUsageKey           = MessagePrefixKey + ".usage"
	MsgHelpDescriptionKey = MessagePrefixKey + ".help_description"
	MsgDefaultsToKey      = MessagePrefixKey + ".defaults_to"
	MsgOneOfKey           = MessagePrefixKey + ".one_of"
	MsgPositionalKey      = MessagePrefixKey + ".positional_argument"
)
