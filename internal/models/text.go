package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Text is a free-text field filled in by the model. Besides a JSON string it
// accepts a bare number or boolean and keeps the literal as written, so
// "value": 12 reads as "12". null leaves the field empty.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty JSON value for text field")
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case 'n':
		*t = ""
	case 't', 'f', '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		*t = Text(data)
	default:
		return fmt.Errorf("cannot use %s as text", data)
	}
	return nil
}

func (t Text) String() string {
	return string(t)
}
