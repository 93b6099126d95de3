package dynamic

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
)

// DecodeError indicates that a dynamic value could not be converted into the
// requested target type, typically because the value's shape does not match
// the target's fields.  The underlying cause is available via Unwrap.
type DecodeError struct {
	// Target describes the requested target type
	Target string

	// Err is the underlying cause
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot convert dynamic value to %s: %s", e.Target, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Convert re-encodes an already-parsed generic value, such as a
// map[string]interface{} produced by a JSON decode, into the concrete type
// pointed to by target.  Field names are matched by json struct tags, and
// RFC 3339 strings and duration strings decode into time.Time and
// time.Duration fields.
//
// Convert is strict: every field of the target must be supplied by the
// value, and any shape mismatch yields a *DecodeError rather than a
// silently zeroed result.  Keys in the value with no corresponding target
// field are ignored.  Use ConvertLenient for targets with optional fields.
func Convert(property, target interface{}) error {
	return convert(property, target, true)
}

// ConvertLenient is Convert without the requirement that every target field
// be set.  Shape mismatches on fields that are present still fail.
func ConvertLenient(property, target interface{}) error {
	return convert(property, target, false)
}

func convert(property, target interface{}, errorUnset bool) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     target,
		TagName:    "json",
		ErrorUnset: errorUnset,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
	})

	if err != nil {
		return &DecodeError{Target: targetName(target), Err: err}
	}

	if err := decoder.Decode(property); err != nil {
		return &DecodeError{Target: targetName(target), Err: err}
	}

	return nil
}

// ToGeneric produces the generic form of a model value: maps, slices, and
// JSON primitives.  It is the inverse of Convert, useful when a concrete
// value must be placed back into a dynamic model property.
func ToGeneric(value interface{}) (interface{}, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, &DecodeError{Target: "generic value", Err: err}
	}

	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, &DecodeError{Target: "generic value", Err: err}
	}

	return generic, nil
}

func targetName(target interface{}) string {
	return fmt.Sprintf("%T", target)
}
