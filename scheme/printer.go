// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package scheme

import (
	"strconv"
	"strings"
)

// placeholder is emitted in place of a pair that has already been
// printed once during the current top-level Sprint call, per §4.4's
// cycle-detection rule.
const placeholder = "(...)"

// printer holds the per-call visited set. A fresh printer is built
// for every top-level Sprint so the set is cleared between prints, as
// §4.4 and §5 require.
type printer struct {
	visited map[*Value]bool
}

// Sprint serializes v back to surface syntax, per §4.4. It always
// terminates, even on a cyclic pair graph built through set-car!/
// set-cdr! mutation.
func Sprint(v *Value) string {
	p := &printer{visited: make(map[*Value]bool)}
	var b strings.Builder
	p.write(&b, v)
	return b.String()
}

func (p *printer) write(b *strings.Builder, v *Value) {
	if v == nil {
		b.WriteString("()")
		return
	}
	switch v.kind {
	case KindInteger:
		b.WriteString(strconv.FormatInt(v.num, 10))
	case KindSymbol:
		b.WriteString(v.sym.Name)
	case KindProcedure:
		b.WriteString(procedureLabel(v.proc))
	case KindPair:
		if p.visited[v] {
			b.WriteString(placeholder)
			return
		}
		p.writePair(b, v)
	}
}

// writePair prints a chain of pairs: each element of the spine
// separated by a space, a dotted tail for an improper final cdr, and
// the placeholder wherever the spine loops back on a pair already
// printed during this call — including when the looping cdr is the
// pair's own tail, which prints as a dotted placeholder rather than
// continuing the spine (§4.4, and original_source/scheme.cpp's
// Serialize, which this mirrors exactly).
func (p *printer) writePair(b *strings.Builder, v *Value) {
	b.WriteByte('(')
	cur := v
	needSpace := false
	for {
		p.visited[cur] = true
		if needSpace {
			b.WriteByte(' ')
		}
		p.write(b, cur.car)
		needSpace = true

		tail := cur.cdr
		if tail == nil {
			break
		}
		if tail.kind == KindPair {
			if p.visited[tail] {
				b.WriteString(" . ")
				b.WriteString(placeholder)
				break
			}
			cur = tail
			continue
		}
		b.WriteString(" . ")
		p.write(b, tail)
		break
	}
	b.WriteByte(')')
}

// procedureLabel is the implementation-defined surface form for a
// Procedure value; §4.4 notes that tests do not pin its exact shape.
func procedureLabel(p *Procedure) string {
	if p == nil {
		return "#<procedure>"
	}
	if p.Kind == ProcClosure {
		return "#<closure " + p.Name + ">"
	}
	if p.Special {
		return "#<special-form " + p.Name + ">"
	}
	return "#<builtin " + p.Name + ">"
}

// String implements fmt.Stringer for *Value so values print naturally
// through fmt and %v, mirroring lisp1_5.Expr.String.
func (v *Value) String() string { return Sprint(v) }
