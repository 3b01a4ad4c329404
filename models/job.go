package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Job is a posted freelance task. Callers may attach arbitrary fields when
// posting; anything outside the known columns lands in Extra and is flattened
// back into the JSON representation on the way out.
type Job struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	Title      string            `gorm:"size:200" json:"title,omitempty"`
	Category   string            `gorm:"size:100" json:"category,omitempty"`
	Summary    string            `gorm:"type:text" json:"summary,omitempty"`
	CoverImage string            `gorm:"size:500" json:"coverImage,omitempty"`
	UserEmail  string            `gorm:"size:100;index" json:"userEmail,omitempty"`
	PostedBy   string            `gorm:"size:100" json:"postedBy,omitempty"`
	Extra      datatypes.JSONMap `gorm:"type:jsonb" json:"-"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

func (j Job) MarshalJSON() ([]byte, error) {
	type alias Job
	return marshalWithExtra(alias(j), j.Extra)
}

// marshalWithExtra renders v and merges extra into the top-level object.
// Known fields win on key collision.
func marshalWithExtra(v any, extra datatypes.JSONMap) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return raw, nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, ok := m[k]; !ok {
			m[k] = v
		}
	}
	return json.Marshal(m)
}
