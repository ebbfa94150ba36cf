package jsonb

import (
	"encoding/json"
	"fmt"

	"github.com/3eLLenKa/journal-review/internal/domain"
)

// Encode renders metadata for a jsonb column. lib/pq sends []byte parameters
// as bytea, so the document goes over the wire as text.
func Encode(m domain.Metadata) (string, error) {
	if m == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encode metadata: %w", err)
	}
	return string(raw), nil
}

func Decode(raw []byte) (domain.Metadata, error) {
	m := domain.Metadata{}
	if len(raw) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	return m, nil
}
