package dates

import "encoding/json"

// ToMap converts a ParsedDate to the generic JSON map stored in date_info
// columns. Nil in, nil out.
func ToMap(p *ParsedDate) map[string]any {
	if p == nil {
		return nil
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}

// FromMap converts a stored date_info map back into a ParsedDate. Nil or
// empty in, nil out.
func FromMap(m map[string]any) *ParsedDate {
	if len(m) == 0 {
		return nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil
	}
	var p ParsedDate
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil
	}
	return &p
}
