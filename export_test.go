package respond

// Test-only exports for internal functions.
var (
	ProblemFor    = problemFor
	ProblemForAll = problemForAll
)

// NegotiateContentType runs Accept negotiation against the built-in codecs.
func NegotiateContentType(accept string) (string, bool) {
	enc, ok := newCodecRegistry(nil).negotiate(accept)
	if !ok {
		return "", false
	}
	return enc.ContentType(), true
}
