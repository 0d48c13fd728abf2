package desktop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pyroxene.dev/launcher/internal/core/testfixtures"
)

func TestEntry_CommandLine(t *testing.T) {
	tests := []struct {
		name string
		exec string
		want string
	}{
		{"NoCodes", "gnome-terminal", "gnome-terminal"},
		{"TrailingURL", "firefox %u", "firefox"},
		{"AllFileCodes", "app %f %F %u %U %k", "app"},
		{"Icon", "app --icon %i", "app --icon app-icon"},
		{"Name", "app --class %c", "app --class My App"},
		{"LiteralPercent", "printf 100%%", "printf 100%"},
		{"UnknownCodePassesThrough", "app %d", "app %d"},
		{"TrailingPercent", "app %", "app %"},
		{"CodeInsideWord", "app --file=%f", "app --file="},
		{"QuotedSpacingKept", "sh -c 'a  b' %U", "sh -c 'a  b'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := testfixtures.NewEntryBuilder().
				WithName("My App").
				WithIcon("app-icon").
				WithExec(tt.exec).
				MustBuild()
			assert.Equal(t, tt.want, entry.CommandLine())
		})
	}
}
