package service

import "strings"

// sanitizeUTF8 drops invalid UTF-8 bytes so Postgres accepts the text in a
// jsonb column.
func sanitizeUTF8(s string) string {
	return strings.ToValidUTF8(s, "")
}
