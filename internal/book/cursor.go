package book

import (
	"encoding/base64"
	"encoding/json"
	"time"
)

// CursorData is the position of the last entry of a page.
type CursorData struct {
	AfterID   string    `json:"after_id"`
	CreatedAt time.Time `json:"created_at"`
}

// EncodeCursor encodes cursor data to a base64 string
func EncodeCursor(data CursorData) string {
	if data.AfterID == "" {
		return ""
	}
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(jsonBytes)
}

// DecodeCursor decodes a base64 cursor string to CursorData. An empty cursor means
// the first page and decodes to nil.
func DecodeCursor(cursor string) (*CursorData, error) {
	if cursor == "" {
		return nil, nil
	}

	decoded, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	var data CursorData
	if err := json.Unmarshal(decoded, &data); err != nil || data.AfterID == "" || data.CreatedAt.IsZero() {
		return nil, ErrInvalidCursor
	}
	return &data, nil
}
