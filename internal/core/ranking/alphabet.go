package ranking

import "unicode/utf8"

const (
	onlyInName  byte = 0xFE
	onlyInQuery byte = 0xFF

	// maxShared is the number of distinct characters two strings may have in
	// common and still be rewritten one byte per character
	maxShared = int(onlyInName)
)

// byteAlphabet rewrites name and query so that every character takes exactly
// one byte. Characters present in both strings get distinct codes. Characters
// present in only one of them collapse onto a per-side code, as they can never
// match. Jaro-Winkler only compares characters for equality, so the rewritten
// pair scores the same as the character sequences of the originals.
//
// Pure ASCII input is returned unchanged. Pairs sharing more than maxShared
// distinct characters are also returned unchanged and compared bytewise.
func byteAlphabet(name, query string) (string, string) {
	if isASCII(name) && isASCII(query) {
		return name, query
	}

	inQuery := make(map[rune]struct{}, len(query))
	for _, r := range query {
		inQuery[r] = struct{}{}
	}

	codes := make(map[rune]byte)
	a := make([]byte, 0, utf8.RuneCountInString(name))
	for _, r := range name {
		if _, shared := inQuery[r]; !shared {
			a = append(a, onlyInName)
			continue
		}
		code, ok := codes[r]
		if !ok {
			if len(codes) == maxShared {
				return name, query
			}
			code = byte(len(codes))
			codes[r] = code
		}
		a = append(a, code)
	}

	b := make([]byte, 0, utf8.RuneCountInString(query))
	for _, r := range query {
		if code, ok := codes[r]; ok {
			b = append(b, code)
		} else {
			b = append(b, onlyInQuery)
		}
	}

	return string(a), string(b)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
