package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNames(t *testing.T) {
	t.Run("exact full name", func(t *testing.T) {
		assert.True(t, Names("Damilola Ogunleye", "Damilola Ogunleye"))
	})

	t.Run("case and whitespace insensitive", func(t *testing.T) {
		assert.True(t, Names("  dAMILOLA ", "Damilola Ogunleye"))
	})

	t.Run("first name against full name", func(t *testing.T) {
		assert.True(t, Names("Damilola", "Damilola Ogunleye"))
	})

	t.Run("honorific stripped from candidate", func(t *testing.T) {
		assert.True(t, Names("Seun", "Pastor Seun"))
		assert.True(t, Names("Seun", "Dr Mr Seun"))
	})

	t.Run("honorific only stripped as whole word", func(t *testing.T) {
		// "drew" starts with "dr" but is not an honorific.
		assert.True(t, Names("Drew", "Drew Thompson"))
	})

	t.Run("alias expands to full name", func(t *testing.T) {
		assert.True(t, Names("Dami", "Damilola Ogunleye"))
		assert.True(t, Names("Temi", "Temitope Adeola"))
		assert.True(t, Names("IBK", "Ibukun Awosika"))
	})

	t.Run("short names do not collide", func(t *testing.T) {
		assert.False(t, Names("Seun", "Segun"))
	})

	t.Run("short name exact match", func(t *testing.T) {
		assert.True(t, Names("Seun", "Seun"))
	})

	t.Run("distinct names rejected", func(t *testing.T) {
		assert.False(t, Names("Damilola", "Temitope Adeola"))
	})

	t.Run("empty inputs never match", func(t *testing.T) {
		assert.False(t, Names("", "Seun"))
		assert.False(t, Names("Seun", ""))
		assert.False(t, Names("", ""))
		// A candidate that is nothing but honorifics is empty too.
		assert.False(t, Names("Pastor", "Pastor"))
	})
}

func TestStripHonorifics(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single title", "pastor seun", "seun"},
		{"stacked titles", "dr mr seun", "seun"},
		{"no title", "seun adebayo", "seun adebayo"},
		{"title embedded mid-name stays", "seun pastor", "seun pastor"},
		{"pst abbreviation", "pst dami", "dami"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripHonorifics(tt.in))
		})
	}
}
