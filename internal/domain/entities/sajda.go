package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SajdaKind tells which shape a prostration marker has.
type SajdaKind int

const (
	SajdaNone     SajdaKind = iota // no prostration at this ayah
	SajdaFlag                      // prostration marked by a bare flag
	SajdaDetailed                  // prostration with id and ruling
)

// Sajda is the prostration marker of an ayah. The remote service sends either
// a boolean or an object, so the shape is kept as a tagged value and callers
// switch on Kind.
type Sajda struct {
	Kind        SajdaKind
	ID          int  // sajda number, SajdaDetailed only
	Recommended bool // SajdaDetailed only
	Obligatory  bool // SajdaDetailed only
}

type sajdaRecord struct {
	ID          int  `json:"id"`
	Recommended bool `json:"recommended"`
	Obligatory  bool `json:"obligatory"`
}

// Present reports whether the ayah carries a prostration.
func (s Sajda) Present() bool {
	return s.Kind != SajdaNone
}

// UnmarshalJSON accepts null, a boolean or a sajda object.
func (s *Sajda) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte("false")):
		*s = Sajda{Kind: SajdaNone}
		return nil
	case bytes.Equal(data, []byte("true")):
		*s = Sajda{Kind: SajdaFlag}
		return nil
	case len(data) > 0 && data[0] == '{':
		var rec sajdaRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return fmt.Errorf("decode sajda: %w", err)
		}
		*s = Sajda{
			Kind:        SajdaDetailed,
			ID:          rec.ID,
			Recommended: rec.Recommended,
			Obligatory:  rec.Obligatory,
		}
		return nil
	default:
		return fmt.Errorf("decode sajda: unexpected value %s", data)
	}
}

// MarshalJSON writes the same shape the remote service uses.
func (s Sajda) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case SajdaNone:
		return []byte("false"), nil
	case SajdaFlag:
		return []byte("true"), nil
	case SajdaDetailed:
		return json.Marshal(sajdaRecord{
			ID:          s.ID,
			Recommended: s.Recommended,
			Obligatory:  s.Obligatory,
		})
	default:
		return nil, fmt.Errorf("encode sajda: unknown kind %d", s.Kind)
	}
}
