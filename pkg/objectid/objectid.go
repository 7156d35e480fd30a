// Package objectid validates the identifier format the Spikemate backend
// uses for every resource: a 24-character lowercase-insensitive hex string.
package objectid

const encodedLen = 24

// IsValid reports whether id is a well-formed 24-character hex identifier.
func IsValid(id string) bool {
	if len(id) != encodedLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
