package cf

import (
	"fmt"
)

// MapIToMapS converts the map[interface{}]interface{} trees produced by some yaml decoders into
// the map[string]interface{} form consumed by Load.
func MapIToMapS(in map[interface{}]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[fmt.Sprintf("%v", k)] = cleanUp(v)
	}
	return out
}

func cleanUp(v interface{}) interface{} {
	switch v := v.(type) {
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = cleanUp(e)
		}
		return out

	case map[interface{}]interface{}:
		return MapIToMapS(v)

	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, e := range v {
			out[k] = cleanUp(e)
		}
		return out

	default:
		return v
	}
}
