package util

import (
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// TextToPgx wraps a string into pgtype.Text, trimming surrounding space.
// A string that is empty after trimming becomes SQL null.
func TextToPgx(s string) pgtype.Text {
	trim := strings.TrimSpace(s)
	if trim == "" {
		return pgtype.Text{Valid: false}
	}

	return pgtype.Text{String: trim, Valid: true}
}
