package desktop

import "strings"

// CommandLine returns the Exec value with field codes expanded so it can be
// handed to a shell. File and URL codes are dropped since the launcher never
// passes arguments; %i expands to the icon, %c to the name and %% to a
// literal percent sign.
func (e *Entry) CommandLine() string {
	var b strings.Builder
	b.Grow(len(e.exec))

	exec := e.exec
	for i := 0; i < len(exec); i++ {
		c := exec[i]
		if c != '%' || i+1 >= len(exec) {
			b.WriteByte(c)
			continue
		}

		switch exec[i+1] {
		case 'f', 'F', 'u', 'U', 'k':
			// removed
		case 'i':
			b.WriteString(e.icon)
		case 'c':
			b.WriteString(e.name)
		case '%':
			b.WriteByte('%')
		default:
			b.WriteByte(c)
			continue
		}
		i++
	}

	return strings.TrimSpace(b.String())
}
