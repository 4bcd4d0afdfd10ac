package services

import (
	"encoding/json"
	"time"
)

// OptionalTime records whether a timestamp field appeared in the request
// body at all. A JSON null yields Set=true with a nil Value, which clears
// the stored timestamp; an absent field leaves it untouched.
type OptionalTime struct {
	Set   bool
	Value *time.Time
}

func (o *OptionalTime) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" || string(b) == `""` {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

func (o OptionalTime) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
