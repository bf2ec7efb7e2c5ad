package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"hotel-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
	CursorVersionV1  = "v1"
)

type Cursor struct {
	After string `json:"after,omitempty"`
}

// KeysetCursor is the decoded position after which the next page starts.
type KeysetCursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// Uses microsecond precision to align with PostgreSQL timestamp precision
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	cursorData := CursorVersionV1 + ":" + strconv.FormatInt(t.UnixMicro(), 10) + "-" + id.String()
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	if cursor == "" {
		return time.Time{}, uuid.Nil, errs.New("cursor cannot be empty")
	}

	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "invalid cursor encoding")
	}

	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return time.Time{}, uuid.Nil, errs.New("unsupported cursor version")
	}

	parts := strings.SplitN(payload, "-", 2)
	if len(parts) != 2 {
		return time.Time{}, uuid.Nil, errs.New("invalid cursor format: expected '<micros>-<uuid>'")
	}

	timestamp, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "invalid cursor timestamp")
	}

	id, err := uuid.Parse(parts[1])
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "invalid cursor id")
	}

	return time.UnixMicro(timestamp), id, nil
}

// decodeCursor returns nil for the first page.
func decodeCursor(after *Cursor) (*KeysetCursor, error) {
	if after == nil || after.After == "" {
		return nil, nil
	}
	t, id, err := DecodeAfterCursor(after.After)
	if err != nil {
		return nil, err
	}
	return &KeysetCursor{CreatedAt: t, ID: id}, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// pageOf expects rows fetched with limit+1 and trims the extra row.
func pageOf(rows []*ReservationView, limit int) *ReservationPage {
	page := &ReservationPage{Items: rows}
	if len(rows) > limit {
		page.Items = rows[:limit]
		last := page.Items[limit-1]
		page.NextCursor = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	if page.Items == nil {
		page.Items = []*ReservationView{}
	}
	return page
}
