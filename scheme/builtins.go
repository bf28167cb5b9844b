// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package scheme

// This file implements every ordinary (non-special) procedure: each
// receives its arguments already evaluated, left to right.

func registerBuiltins(env *Env) {
	procs := []*Procedure{
		newBuiltinProcedure("+", addProc),
		newBuiltinProcedure("-", subProc),
		newBuiltinProcedure("*", mulProc),
		newBuiltinProcedure("/", divProc),
		newBuiltinProcedure("max", maxProc),
		newBuiltinProcedure("min", minProc),
		newBuiltinProcedure("=", cmpProc("=", func(a, b int64) bool { return a == b })),
		newBuiltinProcedure("<", cmpProc("<", func(a, b int64) bool { return a < b })),
		newBuiltinProcedure(">", cmpProc(">", func(a, b int64) bool { return a > b })),
		newBuiltinProcedure("<=", cmpProc("<=", func(a, b int64) bool { return a <= b })),
		newBuiltinProcedure(">=", cmpProc(">=", func(a, b int64) bool { return a >= b })),
		newBuiltinProcedure("not", notProc),
		newBuiltinProcedure("abs", absProc),
		newBuiltinProcedure("number?", predicateProc(func(v *Value) bool { return v != nil && v.kind == KindInteger })),
		newBuiltinProcedure("boolean?", predicateProc(func(v *Value) bool {
			return v != nil && v.kind == KindSymbol && (v.sym == symTrue || v.sym == symFalse)
		})),
		newBuiltinProcedure("null?", predicateProc(func(v *Value) bool { return v == nil })),
		newBuiltinProcedure("pair?", predicateProc(func(v *Value) bool { return v != nil && v.kind == KindPair })),
		newBuiltinProcedure("list?", predicateProc(isProperList)),
		newBuiltinProcedure("symbol?", predicateProc(func(v *Value) bool { return v != nil && v.kind == KindSymbol })),
		newBuiltinProcedure("procedure?", predicateProc(func(v *Value) bool { return v != nil && v.kind == KindProcedure })),
		newBuiltinProcedure("cons", consProc),
		newBuiltinProcedure("car", carProc),
		newBuiltinProcedure("cdr", cdrProc),
		newBuiltinProcedure("list", listProc),
		newBuiltinProcedure("list-ref", listRefProc),
		newBuiltinProcedure("list-tail", listTailProc),
	}
	for _, p := range procs {
		env.procs[p.Name] = p
	}
}

func wantInts(name string, args []*Value) ([]int64, error) {
	out := make([]int64, len(args))
	for i, a := range args {
		if a == nil || a.kind != KindInteger {
			return nil, newRuntimeError("%s: argument %d is not a number", name, i+1)
		}
		out[i] = a.num
	}
	return out, nil
}

func addProc(args []*Value) (*Value, error) {
	ns, err := wantInts("+", args)
	if err != nil {
		return nil, err
	}
	var sum int64
	for _, n := range ns {
		sum += n
	}
	return newInteger(sum), nil
}

func subProc(args []*Value) (*Value, error) {
	ns, err := wantInts("-", args)
	if err != nil {
		return nil, err
	}
	if len(ns) == 0 {
		return nil, newRuntimeError("-: expected at least 1 argument")
	}
	acc := ns[0]
	for _, n := range ns[1:] {
		acc -= n
	}
	return newInteger(acc), nil
}

func mulProc(args []*Value) (*Value, error) {
	ns, err := wantInts("*", args)
	if err != nil {
		return nil, err
	}
	acc := int64(1)
	for _, n := range ns {
		acc *= n
	}
	return newInteger(acc), nil
}

func divProc(args []*Value) (*Value, error) {
	ns, err := wantInts("/", args)
	if err != nil {
		return nil, err
	}
	if len(ns) == 0 {
		return nil, newRuntimeError("/: expected at least 1 argument")
	}
	acc := ns[0]
	for _, n := range ns[1:] {
		if n == 0 {
			return nil, newRuntimeError("/: division by zero")
		}
		acc /= n
	}
	return newInteger(acc), nil
}

func maxProc(args []*Value) (*Value, error) {
	ns, err := wantInts("max", args)
	if err != nil {
		return nil, err
	}
	if len(ns) == 0 {
		return nil, newRuntimeError("max: expected at least 1 argument")
	}
	best := ns[0]
	for _, n := range ns[1:] {
		if n > best {
			best = n
		}
	}
	return newInteger(best), nil
}

func minProc(args []*Value) (*Value, error) {
	ns, err := wantInts("min", args)
	if err != nil {
		return nil, err
	}
	if len(ns) == 0 {
		return nil, newRuntimeError("min: expected at least 1 argument")
	}
	best := ns[0]
	for _, n := range ns[1:] {
		if n < best {
			best = n
		}
	}
	return newInteger(best), nil
}

// cmpProc builds a chained comparison procedure (e.g. "(< 1 2 3)" is
// true iff each adjacent pair satisfies less), per §4.3. Zero or one
// operand is vacuously true: the loop below never finds an adjacent
// pair to fail on.
func cmpProc(name string, less func(a, b int64) bool) BuiltinFunc {
	return func(args []*Value) (*Value, error) {
		ns, err := wantInts(name, args)
		if err != nil {
			return nil, err
		}
		for i := 1; i < len(ns); i++ {
			if !less(ns[i-1], ns[i]) {
				return boolValue(false), nil
			}
		}
		return boolValue(true), nil
	}
}

func notProc(args []*Value) (*Value, error) {
	if len(args) != 1 {
		return nil, newRuntimeError("not: expected exactly 1 argument")
	}
	return boolValue(!IsTrue(args[0])), nil
}

func absProc(args []*Value) (*Value, error) {
	ns, err := wantInts("abs", args)
	if err != nil {
		return nil, err
	}
	if len(ns) != 1 {
		return nil, newRuntimeError("abs: expected exactly 1 argument")
	}
	n := ns[0]
	if n < 0 {
		n = -n
	}
	return newInteger(n), nil
}

func predicateProc(pred func(v *Value) bool) BuiltinFunc {
	return func(args []*Value) (*Value, error) {
		if len(args) != 1 {
			return nil, newRuntimeError("expected exactly 1 argument")
		}
		return boolValue(pred(args[0])), nil
	}
}

func consProc(args []*Value) (*Value, error) {
	if len(args) != 2 {
		return nil, newRuntimeError("cons: expected exactly 2 arguments")
	}
	return Cons(args[0], args[1]), nil
}

func carProc(args []*Value) (*Value, error) {
	if len(args) != 1 {
		return nil, newRuntimeError("car: expected exactly 1 argument")
	}
	if args[0] == nil || args[0].kind != KindPair {
		return nil, newRuntimeError("car: not a pair")
	}
	return args[0].car, nil
}

func cdrProc(args []*Value) (*Value, error) {
	if len(args) != 1 {
		return nil, newRuntimeError("cdr: expected exactly 1 argument")
	}
	if args[0] == nil || args[0].kind != KindPair {
		return nil, newRuntimeError("cdr: not a pair")
	}
	return args[0].cdr, nil
}

// listProc is an ordinary procedure, not a special form, so its
// arguments reach it already evaluated — the deliberate deviation
// noted in SPEC_FULL.md's Open Question decisions.
func listProc(args []*Value) (*Value, error) {
	return valuesToList(args), nil
}

func listRefProc(args []*Value) (*Value, error) {
	if len(args) != 2 {
		return nil, newRuntimeError("list-ref: expected exactly 2 arguments")
	}
	idxVal := args[1]
	if idxVal == nil || idxVal.kind != KindInteger || idxVal.num < 0 {
		return nil, newRuntimeError("list-ref: index must be a non-negative integer")
	}
	cur := args[0]
	for i := int64(0); i < idxVal.num; i++ {
		if cur == nil || cur.kind != KindPair {
			return nil, newRuntimeError("list-ref: index out of range")
		}
		cur = cur.cdr
	}
	if cur == nil || cur.kind != KindPair {
		return nil, newRuntimeError("list-ref: index out of range")
	}
	return cur.car, nil
}

func listTailProc(args []*Value) (*Value, error) {
	if len(args) != 2 {
		return nil, newRuntimeError("list-tail: expected exactly 2 arguments")
	}
	idxVal := args[1]
	if idxVal == nil || idxVal.kind != KindInteger || idxVal.num < 0 {
		return nil, newRuntimeError("list-tail: index must be a non-negative integer")
	}
	cur := args[0]
	for i := int64(0); i < idxVal.num; i++ {
		if cur == nil || cur.kind != KindPair {
			return nil, newRuntimeError("list-tail: index out of range")
		}
		cur = cur.cdr
	}
	return cur, nil
}
