package ranking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteAlphabet(t *testing.T) {
	tests := []struct {
		name  string
		a, b  string
		wantA string
		wantB string
	}{
		{"ascii unchanged", "Files", "fi", "Files", "fi"},
		{"shared characters get codes", "éaé", "aé", "\x00\x01\x00", "\x01\x00"},
		{"unshared characters collapse per side", "Éa", "Öa", "\xfe\x00", "\xff\x00"},
		{"empty query", "Éa", "", "\xfe\xfe", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := byteAlphabet(tt.a, tt.b)
			assert.Equal(t, tt.wantA, a)
			assert.Equal(t, tt.wantB, b)
		})
	}
}

func TestByteAlphabet_TooManySharedCharacters(t *testing.T) {
	var sb strings.Builder
	for r := rune(0x4E00); r < 0x4E00+300; r++ {
		sb.WriteRune(r)
	}
	s := sb.String()

	a, b := byteAlphabet(s, s)

	assert.Equal(t, s, a)
	assert.Equal(t, s, b)
	assert.Equal(t, 1.0, Similarity(s, s))
}
