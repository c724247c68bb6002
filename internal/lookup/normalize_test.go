package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeISBN(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"hyphens and parens", "978-4-06-519981(2)", "9784065199812"},
		{"spaces", " 978 4065 199812 ", "9784065199812"},
		{"already normalized", "9784065199812", "9784065199812"},
		{"isbn10 with x keeps digits only", "4-06-519981-X", "406519981"},
		{"no digits", "--()", ""},
		{"empty", "", ""},
		{"full width digits dropped", "９７８4", "4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeISBN(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, NormalizeISBN(got))
		})
	}
}
