package render

import "sort"

// linksKey is the navigational section Mollie attaches to every record. It
// never appears in rendered output, at any nesting depth.
const linksKey = "_links"

type flatField struct {
	key   string
	value any
}

// flattenMap lowers nested mappings into underscore-joined composite keys
// (amount.value becomes amount_value), skipping _links at every depth and
// dropping values that are neither primitive nor a mapping. Keys are
// visited in sorted order per level so the output is deterministic.
func flattenMap(data map[string]any, keyPrefix string) []flatField {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var flattened []flatField
	for _, key := range keys {
		if key == linksKey {
			continue
		}
		finalKey := key
		if keyPrefix != "" {
			finalKey = keyPrefix + "_" + key
		}
		value := data[key]
		switch {
		case isPrimitive(value):
			flattened = append(flattened, flatField{key: finalKey, value: value})
		default:
			if nested, ok := value.(map[string]any); ok {
				flattened = append(flattened, flattenMap(nested, finalKey)...)
			}
		}
	}
	return flattened
}
