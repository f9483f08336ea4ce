package request

import (
	"bytes"
	"encoding/json"
)

// Decimal accepts either a JSON number or a JSON string and keeps the literal
// text, so precision survives until the domain parses it.
type Decimal string

func (d *Decimal) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*d = Decimal(s)
		return nil
	}
	*d = Decimal(bytes.TrimSpace(b))
	return nil
}

func (d *Decimal) text() *string {
	if d == nil {
		return nil
	}
	s := string(*d)
	return &s
}
