package escape

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// Identifier quotes one or more identifier path segments according to
// PostgreSQL lexical rules and joins them with '.'.
//
// Each argument is first split on '.'; the resulting sub-parts are
// concatenated across all arguments, and empty sub-parts are dropped.
// A sub-part equal to "*" is emitted verbatim as a wildcard; any other
// sub-part is double-quoted, doubling embedded double quotes.
//
//	Identifier("a", "b", "c") == `"a"."b"."c"`
//	Identifier("a.b", "c")    == `"a"."b"."c"`
//	Identifier("a", "*")      == `"a".*`
//	Identifier("*", "a")      == `*."a"`
func Identifier(parts ...string) (string, error) {
	var segments []string
	for _, part := range parts {
		for _, sub := range strings.Split(part, ".") {
			if sub == "" {
				continue
			}
			segments = append(segments, sub)
		}
	}

	quoted := make([]string, 0, len(segments))
	for _, seg := range segments {
		if strings.IndexByte(seg, 0) >= 0 {
			return "", fmt.Errorf("%w: NUL byte in %q", ErrInvalidIdentifier, seg)
		}
		if seg == "*" {
			quoted = append(quoted, "*")
			continue
		}
		// pq.QuoteIdentifier already applies PostgreSQL's doubled-quote
		// escaping rule; we only add the NUL check and wildcard/path
		// handling the driver has no reason to implement.
		quoted = append(quoted, pq.QuoteIdentifier(seg))
	}
	return strings.Join(quoted, "."), nil
}
