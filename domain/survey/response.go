package survey

import (
	"encoding/json"
	"fmt"
)

// ResponseSet maps question id to the raw answer value for exactly one
// instrument and one completed attempt. The session layer accumulates it one
// answer at a time; once handed to a scorer it is treated as immutable.
type ResponseSet map[int]int

// Clone returns an independent copy.
func (rs ResponseSet) Clone() ResponseSet {
	out := make(ResponseSet, len(rs))
	for k, v := range rs {
		out[k] = v
	}
	return out
}

// ToJSON serializes the raw responses for audit storage. Stored alongside
// derived scores so results can be re-scored if scoring rules change.
func (rs ResponseSet) ToJSON() (string, error) {
	data, err := json.Marshal(rs)
	if err != nil {
		return "", fmt.Errorf("marshal responses: %w", err)
	}
	return string(data), nil
}

// ResponsesFromJSON restores a ResponseSet from its storage form. The
// round trip reproduces the identical mapping: same keys, same values.
func ResponsesFromJSON(s string) (ResponseSet, error) {
	var rs ResponseSet
	if err := json.Unmarshal([]byte(s), &rs); err != nil {
		return nil, fmt.Errorf("unmarshal responses: %w", err)
	}
	return rs, nil
}
