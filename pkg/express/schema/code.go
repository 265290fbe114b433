package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Code is a notification code. The REST service sends it as a string ("0"), the SOAP service as
// an integer attribute; both decode here.
type Code int

// UnmarshalJSON accepts the code as a JSON number or string.
func (c *Code) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*c = 0
			return nil
		}
		data = []byte(s)
	}

	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("notification code %s: %w", data, err)
	}
	*c = Code(n)
	return nil
}

// MarshalJSON writes the code as a string, the way the REST service does.
func (c Code) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.Itoa(int(c)))
}
