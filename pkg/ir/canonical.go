package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// CanonicalKey renders e as Pretty does, except a Var, and the binder of a
// Let, LetRef or For, is rendered by its UniqID rather than its source name. Two variables that happen to share a
// name (directly-built IR, or a shadowing binder) must not collide under
// memoization, so this is what the guesser keys its guesses on instead of
// Pretty.
func CanonicalKey(e Expr) string {
	var b strings.Builder
	writeCanonical(&b, e)
	return b.String()
}

func writeCanonical(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case Val:
		b.WriteString(n.V.Pretty())
	case ValArr:
		b.WriteByte('{')
		for i, el := range n.Elems {
			if i > 0 {
				b.WriteString(", ")
			}
			writeCanonical(b, el)
		}
		b.WriteByte('}')
	case Struct:
		fmt.Fprintf(b, "%s{", n.Ty.String())
		for i, f := range n.Fields {
			if i > 0 {
				b.WriteString("; ")
			}
			fmt.Fprintf(b, "%s=", f.Name)
			writeCanonical(b, f.Val)
		}
		b.WriteByte('}')
	case Var:
		b.WriteByte('#')
		b.WriteString(strconv.FormatUint(uint64(n.ID), 10))
	case UnOp:
		fmt.Fprintf(b, "(%s ", unOpSym(n.Op))
		writeCanonical(b, n.E)
		b.WriteByte(')')
	case BinOp:
		b.WriteByte('(')
		writeCanonical(b, n.E1)
		fmt.Fprintf(b, " %s ", binOpSym(n.Op))
		writeCanonical(b, n.E2)
		b.WriteByte(')')
	case Cast:
		fmt.Fprintf(b, "(%s)", n.Target)
		writeCanonical(b, n.E)
	case ArrRead:
		writeCanonical(b, n.Arr)
		b.WriteByte('[')
		writeCanonical(b, n.Idx)
		if n.Kind == Length {
			b.WriteByte(',')
			writeCanonical(b, n.N)
		}
		b.WriteByte(']')
	case ArrWrite:
		writeCanonical(b, n.Arr)
		b.WriteByte('[')
		writeCanonical(b, n.Idx)
		if n.Kind == Length {
			b.WriteByte(',')
			writeCanonical(b, n.N)
		}
		b.WriteString("] := ")
		writeCanonical(b, n.Rhs)
	case Proj:
		writeCanonical(b, n.Struct)
		b.WriteByte('.')
		b.WriteString(n.Field)
	case Let:
		fmt.Fprintf(b, "let #%d = ", n.X)
		writeCanonical(b, n.E1)
		b.WriteString(" in ")
		writeCanonical(b, n.E2)
	case LetRef:
		fmt.Fprintf(b, "var #%d", n.X)
		if n.E1 != nil {
			b.WriteString(" = ")
			writeCanonical(b, n.E1)
		}
		b.WriteString(" in ")
		writeCanonical(b, n.E2)
	case Assign:
		writeCanonical(b, n.Lhs)
		b.WriteString(" := ")
		writeCanonical(b, n.Rhs)
	case Seq:
		writeCanonical(b, n.E1)
		b.WriteString("; ")
		writeCanonical(b, n.E2)
	case If:
		b.WriteString("if ")
		writeCanonical(b, n.Cond)
		b.WriteString(" then ")
		writeCanonical(b, n.Then)
		b.WriteString(" else ")
		writeCanonical(b, n.Else)
	case While:
		b.WriteString("while ")
		writeCanonical(b, n.Cond)
		b.WriteString(" do ")
		writeCanonical(b, n.Body)
	case For:
		fmt.Fprintf(b, "for #%d in ", n.X)
		writeCanonical(b, n.Start)
		b.WriteString(", ")
		writeCanonical(b, n.Len)
		b.WriteString(" do ")
		writeCanonical(b, n.Body)
	case Call:
		writeCanonical(b, n.Fn)
		b.WriteByte('(')
		for i, a := range n.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			writeCanonical(b, a)
		}
		b.WriteByte(')')
	case Print:
		b.WriteString("print ")
		writeCanonical(b, n.E)
	case Error:
		fmt.Fprintf(b, "error %q", n.Msg)
	case LUT:
		b.WriteString("lut(")
		writeCanonical(b, n.E)
		b.WriteByte(')')
	case BPerm:
		b.WriteString("bperm(")
		writeCanonical(b, n.A)
		b.WriteString(", ")
		writeCanonical(b, n.B)
		b.WriteByte(')')
	default:
		b.WriteString("<?>")
	}
}
