package cf

import (
	"fmt"
	"github.com/pkg/errors"
	"reflect"
	"time"
)

// Load copies values from data into the exported fields of the struct pointed to by cf. Keys
// are field names unless overridden with a `cf:"key"` tag. Missing keys leave fields untouched.
func Load(data map[string]interface{}, cf interface{}) error {
	cfV := reflect.ValueOf(cf)
	if cfV.Kind() != reflect.Ptr || cfV.IsNil() {
		return errors.Errorf("cf type [%T] not a struct pointer", cf)
	}
	cfV = cfV.Elem()
	if cfV.Kind() != reflect.Struct {
		return errors.Errorf("cf type [%s] not struct", cfV.Type())
	}
	for i := 0; i < cfV.NumField(); i++ {
		field := cfV.Field(i)
		if !field.CanSet() {
			continue
		}
		key := keyName(cfV.Type().Field(i))
		if v, found := data[key]; found {
			if err := set(key, field, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func set(key string, field reflect.Value, v interface{}) error {
	switch field.Interface().(type) {
	case time.Duration:
		switch d := v.(type) {
		case string:
			parsed, err := time.ParseDuration(d)
			if err != nil {
				return errors.Wrapf(err, "field '%s' invalid duration", key)
			}
			field.SetInt(int64(parsed))
		case int:
			field.SetInt(int64(time.Duration(d) * time.Millisecond))
		default:
			return mismatch(key, field, v)
		}

	case int:
		if j, ok := v.(int); ok {
			field.SetInt(int64(j))
		} else {
			return mismatch(key, field, v)
		}

	case float64:
		switch f := v.(type) {
		case float64:
			field.SetFloat(f)
		case int:
			field.SetFloat(float64(f))
		default:
			return mismatch(key, field, v)
		}

	case bool:
		if b, ok := v.(bool); ok {
			field.SetBool(b)
		} else {
			return mismatch(key, field, v)
		}

	case string:
		if s, ok := v.(string); ok {
			field.SetString(s)
		} else {
			return mismatch(key, field, v)
		}

	default:
		return errors.Errorf("unsupported field type [%s]", field.Type())
	}
	return nil
}

func mismatch(key string, field reflect.Value, v interface{}) error {
	return errors.Errorf("field '%s' type mismatch, got [%s], expected [%s]", key, reflect.TypeOf(v), field.Type())
}

// Dump renders the fields of cf one per line under label.
func Dump(label string, cf interface{}) string {
	cfV := reflect.ValueOf(cf)
	if cfV.Kind() == reflect.Ptr {
		cfV = cfV.Elem()
	}
	if cfV.Kind() != reflect.Struct {
		return ""
	}
	out := label + " {\n"
	format := fmt.Sprintf("\t%%-%ds %%v\n", maxKeyLength(cfV))
	for i := 0; i < cfV.NumField(); i++ {
		if cfV.Field(i).CanInterface() {
			out += fmt.Sprintf(format, keyName(cfV.Type().Field(i)), cfV.Field(i).Interface())
		}
	}
	out += "}\n"
	return out
}

func keyName(v reflect.StructField) string {
	if tag := v.Tag.Get("cf"); tag != "" {
		return tag
	}
	return v.Name
}

func maxKeyLength(cfV reflect.Value) int {
	longest := 0
	for i := 0; i < cfV.NumField(); i++ {
		if l := len(keyName(cfV.Type().Field(i))); l > longest {
			longest = l
		}
	}
	return longest
}
