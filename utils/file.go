package utils

import (
	"fmt"
	"strings"
)

// StorageKey builds the flat storage name for an uploaded file, keyed by the
// owning user and the original file name.
func StorageKey(userID, fileName string) string {
	return SanitizeFileName(fmt.Sprintf("%s_%s", userID, fileName))
}

// SanitizeFileName replaces characters that are unsafe in file names.
func SanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			return r
		}
		return '_'
	}, name)
}
