// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package scheme

// ProcKind distinguishes a built-in procedure (including special
// forms) from a user-defined closure.
type ProcKind uint8

const (
	ProcBuiltin ProcKind = iota
	ProcClosure
)

// SpecialFunc implements a special form: it receives its argument list
// unevaluated (the cdr of the call form) and decides itself what to
// evaluate and in what order.
type SpecialFunc func(ev *Evaluator, env *Env, rawArgs *Value) (*Value, error)

// BuiltinFunc implements an ordinary procedure: by the time it is
// called, every argument has already been evaluated left to right.
type BuiltinFunc func(args []*Value) (*Value, error)

// Procedure is the callable variant within Value, keyed by kind
// rather than by a deep interface hierarchy — built-ins (including
// special forms) carry a Go function pointer; closures carry the
// captured parameter list, body, and defining environment.
type Procedure struct {
	Name    string
	Kind    ProcKind
	Special bool // only meaningful when Kind == ProcBuiltin

	builtin BuiltinFunc
	special SpecialFunc

	params     *Value   // ProcClosure: list of formal-parameter symbols
	paramNames []string // ProcClosure: params validated and flattened once, at creation
	body       []*Value // ProcClosure: non-empty sequence of body forms
	env        *Env     // ProcClosure: lexical environment captured at creation
}

func newBuiltinProcedure(name string, fn BuiltinFunc) *Procedure {
	return &Procedure{Name: name, Kind: ProcBuiltin, builtin: fn}
}

func newSpecialProcedure(name string, fn SpecialFunc) *Procedure {
	return &Procedure{Name: name, Kind: ProcBuiltin, Special: true, special: fn}
}

// newClosure builds a user-defined procedure. params is validated
// once here, at creation time, rather than on every call, since its
// shape is a structural property of the lambda form.
func newClosure(name string, params *Value, body []*Value, env *Env) (*Procedure, error) {
	names, err := closureParamNames(params)
	if err != nil {
		return nil, err
	}
	return &Procedure{Name: name, Kind: ProcClosure, params: params, paramNames: names, body: body, env: env}, nil
}

// closureParamNames validates that a closure's formal-parameter list
// is a proper list of distinct symbols and returns their names. This
// is checked once, at lambda-creation time, since it is a structural
// (syntax) property of the form, not a property of any particular
// call.
func closureParamNames(params *Value) ([]string, error) {
	var names []string
	seen := make(map[string]bool)
	for cur := params; cur != nil; cur = cur.cdr {
		if cur.kind != KindPair {
			return nil, newSyntaxError("lambda: malformed parameter list")
		}
		param := cur.car
		if param == nil || param.kind != KindSymbol {
			return nil, newSyntaxError("lambda: parameter is not a symbol")
		}
		if seen[param.sym.Name] {
			return nil, newSyntaxError("lambda: duplicate parameter %s", param.sym.Name)
		}
		seen[param.sym.Name] = true
		names = append(names, param.sym.Name)
	}
	return names, nil
}
