package outcome

// Void is the payload of an outcome that succeeds without a value.
type Void struct{}

// IsVoid reports whether v is the Void marker (Void or *Void). The check
// is by type, never by comparing values of other types.
func IsVoid(v any) bool {
	switch v.(type) {
	case Void, *Void:
		return true
	default:
		return false
	}
}
