package ir

import (
	"fmt"
	"strings"
)

// Pretty renders e deterministically, for Print output and diagnostics.
// It renders a Var by its source name, so it is not suitable as a
// memoization key: two distinct variables can share a name. Use
// CanonicalKey for that.
func Pretty(e Expr) string {
	var b strings.Builder
	writePretty(&b, e)
	return b.String()
}

func writePretty(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case Val:
		b.WriteString(n.V.Pretty())
	case ValArr:
		b.WriteByte('{')
		for i, el := range n.Elems {
			if i > 0 {
				b.WriteString(", ")
			}
			writePretty(b, el)
		}
		b.WriteByte('}')
	case Struct:
		fmt.Fprintf(b, "%s{", n.Ty.String())
		for i, f := range n.Fields {
			if i > 0 {
				b.WriteString("; ")
			}
			fmt.Fprintf(b, "%s=", f.Name)
			writePretty(b, f.Val)
		}
		b.WriteByte('}')
	case Var:
		b.WriteString(n.Name)
	case UnOp:
		fmt.Fprintf(b, "(%s ", unOpSym(n.Op))
		writePretty(b, n.E)
		b.WriteByte(')')
	case BinOp:
		b.WriteByte('(')
		writePretty(b, n.E1)
		fmt.Fprintf(b, " %s ", binOpSym(n.Op))
		writePretty(b, n.E2)
		b.WriteByte(')')
	case Cast:
		fmt.Fprintf(b, "(%s)", n.Target)
		writePretty(b, n.E)
	case ArrRead:
		writePretty(b, n.Arr)
		b.WriteByte('[')
		writePretty(b, n.Idx)
		if n.Kind == Length {
			b.WriteByte(',')
			writePretty(b, n.N)
		}
		b.WriteByte(']')
	case ArrWrite:
		writePretty(b, n.Arr)
		b.WriteByte('[')
		writePretty(b, n.Idx)
		if n.Kind == Length {
			b.WriteByte(',')
			writePretty(b, n.N)
		}
		b.WriteString("] := ")
		writePretty(b, n.Rhs)
	case Proj:
		writePretty(b, n.Struct)
		b.WriteByte('.')
		b.WriteString(n.Field)
	case Let:
		fmt.Fprintf(b, "let %s = ", n.Name)
		writePretty(b, n.E1)
		b.WriteString(" in ")
		writePretty(b, n.E2)
	case LetRef:
		fmt.Fprintf(b, "var %s", n.Name)
		if n.E1 != nil {
			b.WriteString(" = ")
			writePretty(b, n.E1)
		}
		b.WriteString(" in ")
		writePretty(b, n.E2)
	case Assign:
		writePretty(b, n.Lhs)
		b.WriteString(" := ")
		writePretty(b, n.Rhs)
	case Seq:
		writePretty(b, n.E1)
		b.WriteString("; ")
		writePretty(b, n.E2)
	case If:
		b.WriteString("if ")
		writePretty(b, n.Cond)
		b.WriteString(" then ")
		writePretty(b, n.Then)
		b.WriteString(" else ")
		writePretty(b, n.Else)
	case While:
		b.WriteString("while ")
		writePretty(b, n.Cond)
		b.WriteString(" do ")
		writePretty(b, n.Body)
	case For:
		fmt.Fprintf(b, "for %s in ", n.Name)
		writePretty(b, n.Start)
		b.WriteString(", ")
		writePretty(b, n.Len)
		b.WriteString(" do ")
		writePretty(b, n.Body)
	case Call:
		writePretty(b, n.Fn)
		b.WriteByte('(')
		for i, a := range n.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			writePretty(b, a)
		}
		b.WriteByte(')')
	case Print:
		b.WriteString("print ")
		writePretty(b, n.E)
	case Error:
		fmt.Fprintf(b, "error %q", n.Msg)
	case LUT:
		b.WriteString("lut(")
		writePretty(b, n.E)
		b.WriteByte(')')
	case BPerm:
		b.WriteString("bperm(")
		writePretty(b, n.A)
		b.WriteString(", ")
		writePretty(b, n.B)
		b.WriteByte(')')
	default:
		b.WriteString("<?>")
	}
}

func unOpSym(op UnaryOp) string {
	switch op {
	case OpNeg:
		return "-"
	case OpNot:
		return "not"
	case OpBwNeg:
		return "~"
	case OpALength:
		return "length"
	default:
		return "?"
	}
}

func binOpSym(op BinaryOp) string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMult:
		return "*"
	case OpDiv:
		return "/"
	case OpRem:
		return "%"
	case OpExpon:
		return "**"
	case OpShL:
		return "<<"
	case OpShR:
		return ">>"
	case OpBwAnd:
		return "&"
	case OpBwOr:
		return "|"
	case OpBwXor:
		return "^"
	case OpEq:
		return "=="
	case OpNeq:
		return "!="
	case OpLt:
		return "<"
	case OpGt:
		return ">"
	case OpLeq:
		return "<="
	case OpGeq:
		return ">="
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	default:
		return "?"
	}
}
