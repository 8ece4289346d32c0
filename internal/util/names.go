// Package util holds small naming helpers shared by the artifact emitters.
package util

import "strings"

// ExportPrefix converts a character id to the SCREAMING_SNAKE prefix used in
// generated module constants, e.g. "zero" -> "ZERO".
func ExportPrefix(id string) string {
	var b strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		case r >= 'A' && r <= 'Z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// TitleCase converts a character id to the CamelCase form used in generated
// function names, e.g. "wall_slide" -> "WallSlide".
func TitleCase(id string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range id {
		if r == '_' || r == '-' || r == ' ' {
			upperNext = true
			continue
		}
		if upperNext && r >= 'a' && r <= 'z' {
			b.WriteRune(r - 'a' + 'A')
		} else {
			b.WriteRune(r)
		}
		upperNext = false
	}
	return b.String()
}
