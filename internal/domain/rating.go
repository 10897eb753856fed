package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Rating is a feedback score as the service sent it. Submissions are free
// form, so numbers, strings and null are all kept as text.
type Rating string

func (r *Rating) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*r = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding rating: %w", err)
		}
		*r = Rating(s)
	default:
		*r = Rating(data)
	}
	return nil
}

func (r Rating) String() string { return string(r) }
