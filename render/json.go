package render

import (
	"encoding/json"
	"io"

	"github.com/reusee/mangrove/tokens"
)

// JSONLines writes one JSON object per token.
func JSONLines(w io.Writer, toks []tokens.Token) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	for _, token := range toks {
		if err := encoder.Encode(token); err != nil {
			return err
		}
	}
	return nil
}
