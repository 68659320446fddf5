package seeder

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"fits", "+44 20 7946", 15, "+44 20 7946"},
		{"exact", "abcde", 5, "abcde"},
		{"cut", "001-555-123-4567x890", 15, "001-555-123-456"},
		{"empty", "", 3, ""},
		{"zero max", "abc", 0, ""},
		{"negative max", "abc", -1, ""},
		{"multibyte", "Müller-Lüdenscheidt", 6, "Müller"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.max)
			assert.Equal(t, tt.want, got)
			if tt.max >= 0 {
				assert.LessOrEqual(t, utf8.RuneCountInString(got), tt.max)
			}
		})
	}
}
