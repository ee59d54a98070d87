package balanze

import "encoding/json"

// Tags is the tag list of a transaction. Anything other than a JSON array
// decodes to nil, and non-string elements of an array are dropped, so one
// malformed row never fails the collection.
type Tags []string

// UnmarshalJSON implements json.Unmarshaler for Tags
func (t *Tags) UnmarshalJSON(data []byte) error {
	var items []interface{}
	if err := json.Unmarshal(data, &items); err != nil || items == nil {
		*t = nil
		return nil
	}

	out := make(Tags, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	*t = out
	return nil
}
