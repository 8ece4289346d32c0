package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExportPrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"zero", "ZERO"},
		{"sigma", "SIGMA"},
		{"mega-man", "MEGA_MAN"},
		{"vile2", "VILE2"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExportPrefix(tt.in))
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"zero", "Zero"},
		{"wall_slide", "WallSlide"},
		{"mega-man", "MegaMan"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TitleCase(tt.in))
	}
}
