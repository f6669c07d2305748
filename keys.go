package skiff

import json "github.com/goccy/go-json"

// DecodeGroupKeys decodes the JSON string array the binding layer ships group
// keys in. Malformed input degrades to a nil key vector instead of failing
// loudly; downstream the length-mismatch check then yields the standard
// sentinel result.
func DecodeGroupKeys(data []byte) []string {
	var keys []string
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil
	}
	return keys
}
