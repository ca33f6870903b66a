package poeditor

import (
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

const tokenField = "api_token"

// form flattens params into form values and merges the token. A nil params
// yields just the token.
func (c *Client) form(params interface{}) (url.Values, error) {
	values := url.Values{}
	if params != nil {
		fields := map[string]interface{}{}
		if err := mapstructure.Decode(params, &fields); err != nil {
			return nil, fmt.Errorf("failed to flatten parameters: %w", err)
		}
		for key, v := range fields {
			s, ok, err := formValue(v)
			if err != nil {
				return nil, fmt.Errorf("failed to encode %s: %w", key, err)
			}
			if ok {
				values.Set(key, s)
			}
		}
	}
	values.Set(tokenField, c.token)
	return values, nil
}

// setJSON stores v as a JSON string under key.
func setJSON(values url.Values, key string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	values.Set(key, string(b))
	return nil
}

// formValue renders one scalar for the form body. Lists and objects become
// JSON. ok is false for nil pointers.
func formValue(v interface{}) (s string, ok bool, err error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "", false, nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return "", false, nil
	}
	if str, isStringer := rv.Interface().(fmt.Stringer); isStringer {
		return str.String(), true, nil
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true, nil
	case reflect.Bool:
		return BoolOf(rv.Bool()).String(), true, nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true, nil
	default:
		b, err := json.Marshal(rv.Interface())
		if err != nil {
			return "", false, err
		}
		return string(b), true, nil
	}
}
