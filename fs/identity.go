// Package fs provides file-based storage for converted pages and the
// page catalogue.
package fs

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// maxIdentityLen bounds the sanitized part of a cache file name.
const maxIdentityLen = 200

// SanitizeIdentity maps a page identity (title or URL) to a file name
// token. Letters, digits, '.', '_' and '-' are kept; any other rune becomes
// '_'. When the mapping changed the input, the xxhash of the original is
// appended so that e.g. "a/b" and "a?b" do not share a file.
//
// Example: "Pacman/Tips and tricks" → "Pacman_Tips_and_tricks-<hash>"
func SanitizeIdentity(identity string) string {
	var b strings.Builder
	changed := false
	for i, r := range identity {
		switch {
		case i == 0 && r == '.':
			b.WriteRune('_')
			changed = true
		case r == '.' || r == '_' || r == '-',
			r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
			changed = true
		}
	}

	token := b.String()
	if token == "" {
		token = "_"
		changed = true
	}
	if len(token) > maxIdentityLen {
		token = token[:maxIdentityLen]
		changed = true
	}
	if changed {
		token += "-" + strconv.FormatUint(xxhash.Sum64String(identity), 16)
	}
	return token
}
