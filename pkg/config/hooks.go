package config

import (
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// stringToBoolHookFunc accepts the spellings people put in environment
// variables (yes/no, on/off, y/n) for boolean settings. Anything else is
// handed to mapstructure's weak decoding unchanged.
func stringToBoolHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Bool {
			return data, nil
		}
		switch strings.ToLower(strings.TrimSpace(data.(string))) {
		case "yes", "y", "on":
			return true, nil
		case "no", "n", "off", "":
			return false, nil
		}
		return data, nil
	}
}
