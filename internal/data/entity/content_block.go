package entity

import (
	"encoding/json"
	"time"
)

// ContentBlock is a key/value JSON document backing a site page section.
type ContentBlock struct {
	Key       string          `db:"key"`
	Data      json.RawMessage `db:"data"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}
