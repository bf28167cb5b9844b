// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package scheme

// Kind discriminates the variant held by a Value.
type Kind uint8

const (
	KindInteger Kind = iota
	KindSymbol
	KindPair
	KindProcedure
)

// Symbol is an interned identifier. Symbols compare by pointer
// identity, never by string comparison, mirroring the teacher's atom
// interning table (lisp1_5's `atoms` map).
type Symbol struct {
	Name string
}

// symbolTable interns symbols by name. The interpreter is
// single-threaded per §5, so this map needs no locking.
var symbolTable = make(map[string]*Symbol)

func intern(name string) *Symbol {
	if s, ok := symbolTable[name]; ok {
		return s
	}
	s := &Symbol{Name: name}
	symbolTable[name] = s
	return s
}

// Predefined symbols. The reader uses quote and the evaluator uses #t
// and #f; the special-form names are interned here up front.
var (
	symQuote   = intern("quote")
	symIf      = intern("if")
	symAnd     = intern("and")
	symOr      = intern("or")
	symDefine  = intern("define")
	symSetBang = intern("set!")
	symSetCar  = intern("set-car!")
	symSetCdr  = intern("set-cdr!")
	symLambda  = intern("lambda")
	symTrue    = intern("#t")
	symFalse   = intern("#f")
)

// Value is a tagged union over the four kinds of first-class Scheme
// value plus the empty list. A nil *Value denotes Nil (the empty
// list, `()`), distinct from every other value — mirroring how
// lisp1_5.Expr uses a nil pointer for the same purpose. Code that
// touches a Value's fields checks for Nil (v == nil) first; the Kind
// method is the exception and panics on Nil.
type Value struct {
	kind Kind

	num int64   // KindInteger
	sym *Symbol // KindSymbol

	car, cdr *Value // KindPair; either may be nil (Nil)

	proc *Procedure // KindProcedure
}

// Kind reports the value's variant. Calling Kind on a nil *Value
// panics; callers must check for Nil (v == nil) first.
func (v *Value) Kind() Kind { return v.kind }

func newInteger(n int64) *Value              { return &Value{kind: KindInteger, num: n} }
func newSymbolValue(s *Symbol) *Value        { return &Value{kind: KindSymbol, sym: s} }
func newPair(car, cdr *Value) *Value         { return &Value{kind: KindPair, car: car, cdr: cdr} }
func newProcedureValue(p *Procedure) *Value  { return &Value{kind: KindProcedure, proc: p} }

// Cons implements the Lisp function CONS: it always allocates a fresh
// pair, even when called repeatedly with identical arguments.
func Cons(car, cdr *Value) *Value { return newPair(car, cdr) }

// Car implements the Lisp function CAR without the "must be a pair"
// check the builtin enforces: nil and non-pairs both yield Nil.
func Car(v *Value) *Value {
	if v == nil || v.kind != KindPair {
		return nil
	}
	return v.car
}

// Cdr is Car's counterpart for the second field of a pair.
func Cdr(v *Value) *Value {
	if v == nil || v.kind != KindPair {
		return nil
	}
	return v.cdr
}

// IsTrue reports whether v is truthy. Per §4.3, exactly one value is
// false: the symbol #f. Everything else, including Nil, is true.
func IsTrue(v *Value) bool {
	return !(v != nil && v.kind == KindSymbol && v.sym == symFalse)
}

func boolValue(t bool) *Value {
	if t {
		return newSymbolValue(symTrue)
	}
	return newSymbolValue(symFalse)
}

// listLength reports the number of pairs in the top-level spine of a
// list, stopping at the first non-pair cdr (which is treated as the
// end for arity-counting purposes, so a dotted tail is not counted).
func listLength(v *Value) int {
	n := 0
	for v != nil && v.kind == KindPair {
		n++
		v = v.cdr
	}
	return n
}

// valuesToList builds a proper list from a slice, most-recent cdr
// first semantics handled by iterating in reverse.
func valuesToList(vs []*Value) *Value {
	var out *Value
	for i := len(vs) - 1; i >= 0; i-- {
		out = newPair(vs[i], out)
	}
	return out
}

// listToValues flattens a proper list into a slice. It reports an
// error if the list is improper (a non-pair, non-nil final cdr).
func listToValues(v *Value) ([]*Value, error) {
	var out []*Value
	for v != nil {
		if v.kind != KindPair {
			return nil, newRuntimeError("improper list")
		}
		out = append(out, v.car)
		v = v.cdr
	}
	return out, nil
}

// isProperList reports whether v is Nil or a chain of pairs whose
// final cdr is Nil. It uses Floyd's cycle detection so that a cyclic
// pair graph (built via set-cdr!) returns false in bounded time
// instead of looping forever, per §3's "must not loop forever" rule.
func isProperList(v *Value) bool {
	slow, fast := v, v
	for {
		if fast == nil {
			return true
		}
		if fast.kind != KindPair {
			return false
		}
		fast = fast.cdr
		if fast == nil {
			return true
		}
		if fast.kind != KindPair {
			return false
		}
		fast = fast.cdr
		slow = slow.cdr
		if fast == slow {
			return false // cycle: never reaches Nil
		}
	}
}
