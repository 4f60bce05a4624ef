package util

import (
	"reflect"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/clparse/clparse/i18n"
	"github.com/clparse/clparse/types"
)

// ConvertString converts a raw command-line value into the typed variable
// pointed to by data. arg names the option or argument in error messages.
func ConvertString(value string, data any, arg string) error {
	switch t := data.(type) {
	case *string:
		*(t) = value
	case *bool:
		if val, err := strconv.ParseBool(value); err == nil {
			*(t) = val
		} else {
			return i18n.Default().WrapErrorf(types.ErrParseBool,
				types.ErrParseBoolKey, value, arg)
		}
	case *int:
		if val, err := strconv.ParseInt(value, 10, 0); err == nil {
			*(t) = int(val)
		} else {
			return i18n.Default().WrapErrorf(types.ErrParseInt,
				types.ErrParseIntKey, value, arg)
		}
	case *int8:
		if val, err := strconv.ParseInt(value, 10, 8); err == nil {
			*(t) = int8(val)
		} else {
			return i18n.Default().WrapErrorf(types.ErrParseInt8,
				types.ErrParseInt8Key, value, arg)
		}
	case *int16:
		if val, err := strconv.ParseInt(value, 10, 16); err == nil {
			*(t) = int16(val)
		} else {
			return i18n.Default().WrapErrorf(types.ErrParseInt16,
				types.ErrParseInt16Key, value, arg)
		}
	case *int32:
		if val, err := strconv.ParseInt(value, 10, 32); err == nil {
			*(t) = int32(val)
		} else {
			return i18n.Default().WrapErrorf(types.ErrParseInt32,
				types.ErrParseInt32Key, value, arg)
		}
	case *int64:
		if val, err := strconv.ParseInt(value, 10, 64); err == nil {
			*(t) = val
		} else {
			return i18n.Default().WrapErrorf(types.ErrParseInt64,
				types.ErrParseInt64Key, value, arg)
		}
	case *uint:
		if val, err := strconv.ParseUint(value, 10, 0); err == nil {
			*(t) = uint(val)
		} else {
			return i18n.Default().WrapErrorf(types.ErrParseUint,
				types.ErrParseUintKey, value, arg)
		}
	case *uint8:
		if val, err := strconv.ParseUint(value, 10, 8); err == nil {
			*(t) = uint8(val)
		} else {
			return i18n.Default().WrapErrorf(types.ErrParseUint8,
				types.ErrParseUint8Key, value, arg)
		}
	case *uint16:
		if val, err := strconv.ParseUint(value, 10, 16); err == nil {
			*(t) = uint16(val)
		} else {
			return i18n.Default().WrapErrorf(types.ErrParseUint16,
				types.ErrParseUint16Key, value, arg)
		}
	case *uint32:
		if val, err := strconv.ParseUint(value, 10, 32); err == nil {
			*(t) = uint32(val)
		} else {
			return i18n.Default().WrapErrorf(types.ErrParseUint32,
				types.ErrParseUint32Key, value, arg)
		}
	case *uint64:
		if val, err := strconv.ParseUint(value, 10, 64); err == nil {
			*(t) = val
		} else {
			return i18n.Default().WrapErrorf(types.ErrParseUint64,
				types.ErrParseUint64Key, value, arg)
		}
	case *float32:
		if val, err := strconv.ParseFloat(value, 32); err == nil {
			*(t) = float32(val)
		} else {
			return i18n.Default().WrapErrorf(types.ErrParseFloat32,
				types.ErrParseFloat32Key, value, arg)
		}
	case *float64:
		if val, err := strconv.ParseFloat(value, 64); err == nil {
			*(t) = val
		} else {
			return i18n.Default().WrapErrorf(types.ErrParseFloat64,
				types.ErrParseFloat64Key, value, arg)
		}
	case *time.Duration:
		if val, err := time.ParseDuration(value); err == nil {
			*(t) = val
		} else {
			return i18n.Default().WrapErrorf(types.ErrParseDuration,
				types.ErrParseDurationKey, value, arg)
		}
	case *time.Time:
		if val, err := dateparse.ParseLocal(value); err == nil {
			*(t) = val
		} else {
			return i18n.Default().WrapErrorf(types.ErrParseTime,
				types.ErrParseTimeKey, value, arg)
		}
	default:
		return i18n.Default().WrapErrorf(types.ErrUnsupportedTypeConversion,
			types.ErrUnsupportedTypeConversionKey, reflect.TypeOf(data).String(), arg)
	}

	return nil
}

// CanConvert reports whether data is a valid conversion target for an item of
// the given kind. Standalone items only convert to *bool.
func CanConvert(data any, optionType types.OptionType, arg string) (bool, error) {
	if reflect.ValueOf(data).Kind() != reflect.Ptr {
		return false, i18n.Default().WrapErrorf(types.ErrPointerExpected,
			types.ErrPointerExpectedKey, arg)
	}

	if optionType == types.Standalone {
		if _, ok := data.(*bool); !ok {
			return false, i18n.Default().WrapErrorf(types.ErrTypeMismatch,
				types.ErrTypeMismatchKey, arg)
		}
	}

	return true, nil
}
