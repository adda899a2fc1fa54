package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// LooseString accepts a JSON string or a JSON number and keeps its text.
// Browser forms send amounts and ids either way; null decodes to "".
type LooseString string

func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = LooseString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("expected a string or a number, got %s", data)
	}
	*s = LooseString(num.String())
	return nil
}

func (s LooseString) String() string {
	return string(s)
}
