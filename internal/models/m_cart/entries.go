package m_cart

import (
	"encoding/json"
	"fmt"
)

// Entry is the stored shape of one cart entry.
type Entry struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// EncodeEntries serializes entries for the entries column. A nil slice is
// stored as an empty JSON array.
func EncodeEntries(entries []Entry) (string, error) {
	if entries == nil {
		entries = []Entry{}
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("encode cart entries: %w", err)
	}
	return string(b), nil
}

// DecodeEntries parses the entries column. An empty column is an empty cart.
func DecodeEntries(s string) ([]Entry, error) {
	if s == "" {
		return nil, nil
	}
	var out []Entry
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("decode cart entries: %w", err)
	}
	return out, nil
}
