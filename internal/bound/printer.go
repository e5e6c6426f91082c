package bound

import (
	"bufio"
	"fmt"
	"io"
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
	w.WriteString(describe(node))
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

func describe(node Node) string {
	var details string

	switch n := node.(type) {
	case *ErrorExpr:
		details = n.Type().String()
	case *LiteralExpr:
		details = fmt.Sprintf("%s %s", quote(n.Value), n.Type())
	case *VariableExpr:
		details = fmt.Sprintf("%s %s", n.Variable.Name, n.Type())
	case *AssignExpr:
		details = fmt.Sprintf("%s %s", n.Variable.Name, n.Type())
	case *UnaryExpr:
		details = fmt.Sprintf("%s %s", n.Op.TokenKind, n.Type())
	case *BinaryExpr:
		details = fmt.Sprintf("%s %s", n.Op.TokenKind, n.Type())
	case *VarDecl:
		details = n.Variable.String()
	case *LabelStmt:
		details = n.Label.Name
	case *GotoStmt:
		details = n.Label.Name
	case *CondGotoStmt:
		if n.JumpIfTrue {
			details = n.Label.Name + " if true"
		} else {
			details = n.Label.Name + " if false"
		}
	case *ExprStmt:
		if n.Discard {
			details = "discard"
		}
	}

	if details == "" {
		return node.Kind().String()
	}
	return node.Kind().String() + " " + details
}

func quote(value any) string {
	if s, ok := value.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprint(value)
}
