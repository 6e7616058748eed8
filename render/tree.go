package render

import (
	"fmt"
	"io"

	"github.com/m1gwings/treedrawer/tree"
	"github.com/reusee/mangrove/tokens"
)

// Tree draws the tokens of a source, grouped by the line they start on.
// Trivia tokens are left out.
func Tree(w io.Writer, name string, toks []tokens.Token) error {
	root := tree.NewTree(tree.NodeString(name))
	var line *tree.Tree
	lineNum := -1
	for _, token := range toks {
		if token.Kind.IsTrivia() {
			continue
		}
		start := token.Range().Start
		if line == nil || start.Line != lineNum {
			lineNum = start.Line
			line = root.AddChild(tree.NodeString(fmt.Sprintf("line %d", lineNum+1)))
		}
		label := token.Kind.String()
		if token.Value != "" {
			label += " " + quote(token.Value)
		}
		line.AddChild(tree.NodeString(label))
	}
	_, err := fmt.Fprintln(w, root)
	return err
}
