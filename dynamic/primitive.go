package dynamic

import (
	"time"

	"github.com/spf13/cast"
)

// String coerces a dynamic value into a string.
func String(value interface{}) (string, error) {
	v, err := cast.ToStringE(value)
	if err != nil {
		return "", &DecodeError{Target: "string", Err: err}
	}

	return v, nil
}

// Bool coerces a dynamic value into a bool.
func Bool(value interface{}) (bool, error) {
	v, err := cast.ToBoolE(value)
	if err != nil {
		return false, &DecodeError{Target: "bool", Err: err}
	}

	return v, nil
}

// Int64 coerces a dynamic value into an int64.
func Int64(value interface{}) (int64, error) {
	v, err := cast.ToInt64E(value)
	if err != nil {
		return 0, &DecodeError{Target: "int64", Err: err}
	}

	return v, nil
}

// Float64 coerces a dynamic value into a float64.
func Float64(value interface{}) (float64, error) {
	v, err := cast.ToFloat64E(value)
	if err != nil {
		return 0, &DecodeError{Target: "float64", Err: err}
	}

	return v, nil
}

// Duration coerces a dynamic value into a time.Duration.  Strings are parsed
// with time.ParseDuration.
func Duration(value interface{}) (time.Duration, error) {
	v, err := cast.ToDurationE(value)
	if err != nil {
		return 0, &DecodeError{Target: "time.Duration", Err: err}
	}

	return v, nil
}
