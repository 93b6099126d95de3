package httpclient

import (
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	// ClientKey is the Viper subkey under which client options are expected.
	// FromViper *does not* assume this key.
	ClientKey = "httpclient"
)

// Sub returns the standard child Viper, using ClientKey, for this package.
// If passed nil, this function returns nil.
func Sub(v *viper.Viper) *viper.Viper {
	if v != nil {
		return v.Sub(ClientKey)
	}

	return nil
}

// FromViper produces an Options from a (possibly nil) Viper instance.
// Duration fields accept strings like "90s", and the trust policy accepts
// "platform" or "all".  Callers should use FromViper(Sub(v)) if the
// standard subkey is desired.
func FromViper(v *viper.Viper) (*Options, error) {
	o := new(Options)
	if v != nil {
		decodeHook := viper.DecodeHook(
			mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.TextUnmarshallerHookFunc(),
			),
		)

		if err := v.Unmarshal(o, decodeHook); err != nil {
			return nil, err
		}
	}

	return o, nil
}
