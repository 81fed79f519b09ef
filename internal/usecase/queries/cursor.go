package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"dynamic-pricing/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100

	cursorPrefix = "pc1:"
)

type Cursor struct {
	After string `json:"after,omitempty"`
}

// EncodeAfterCursor keeps microseconds, which is what timestamptz stores.
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	raw := cursorPrefix + strconv.FormatInt(t.UnixMicro(), 10) + "_" + id.String()
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Mark(errs.Wrap(err, "cursor is not base64url"), ErrInvalidCursor)
	}
	payload, ok := strings.CutPrefix(string(raw), cursorPrefix)
	if !ok {
		return time.Time{}, uuid.Nil, ErrInvalidCursor
	}
	micros, idPart, ok := strings.Cut(payload, "_")
	if !ok {
		return time.Time{}, uuid.Nil, ErrInvalidCursor
	}
	ts, err := strconv.ParseInt(micros, 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Mark(errs.Wrap(err, "cursor timestamp"), ErrInvalidCursor)
	}
	id, err := uuid.Parse(idPart)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Mark(errs.Wrap(err, "cursor id"), ErrInvalidCursor)
	}
	return time.UnixMicro(ts).UTC(), id, nil
}

func ValidateLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
