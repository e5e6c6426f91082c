package ast

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/HicaroD/mangle/internal/lexer/token"
)

// Fprint writes the tree rooted at node to w, one node per line.
func Fprint(w io.Writer, node Node) error {
	writer := bufio.NewWriter(w)
	fprint(writer, node, "", true)
	return writer.Flush()
}

func fprint(w *bufio.Writer, node Node, indent string, isLast bool) {
	marker := "├──"
	if isLast {
		marker = "└──"
	}

	w.WriteString(indent)
	w.WriteString(marker)
	w.WriteString(nodeName(node))
	if tok, ok := node.(*token.Token); ok && tok.Value != nil {
		fmt.Fprintf(w, " %v", tok.Value)
	}
	w.WriteByte('\n')

	if isLast {
		indent += "   "
	} else {
		indent += "│  "
	}

	children := Children(node)
	for i, child := range children {
		fprint(w, child, indent, i == len(children)-1)
	}
}

func nodeName(node Node) string {
	if tok, ok := node.(*token.Token); ok {
		if tok.Missing {
			return fmt.Sprintf("Token<%s> (missing)", tok.Kind)
		}
		return fmt.Sprintf("Token<%s>", tok.Kind)
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", node), "*ast.")
}
