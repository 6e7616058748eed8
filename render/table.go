package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/reusee/mangrove/tokens"
)

// Table writes one aligned row per token.
func Table(w io.Writer, toks []tokens.Token) error {
	if _, err := fmt.Fprintf(w, "%-14s %-24s %-6s %s\n", "KIND", "VALUE", "LENGTH", "RANGE"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 60)); err != nil {
		return err
	}
	for _, token := range toks {
		if _, err := fmt.Fprintf(w, "%-14s %-24s %-6d %s\n",
			token.Kind,
			quote(token.Value),
			token.Length,
			token.Range(),
		); err != nil {
			return err
		}
	}
	return nil
}

// quote escapes control characters but keeps printable text as is
func quote(s string) string {
	q := strconv.Quote(s)
	return q[1 : len(q)-1]
}
