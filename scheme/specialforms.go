// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package scheme

// This file implements the special forms of §4.3's table: quote, if,
// and, or, define, set!, lambda, set-car!, set-cdr!. Each receives its
// argument list unevaluated and decides for itself what to evaluate.
// A malformed call — wrong shape or arity for the form itself — is a
// SyntaxError per §7 ("malformed special form whose shape is checked
// at read-like structural time"); a well-shaped call that fails
// because of what its arguments evaluate to is a RuntimeError.

func registerSpecialForms(env *Env) {
	forms := []*Procedure{
		newSpecialProcedure("quote", quoteForm),
		newSpecialProcedure("if", ifForm),
		newSpecialProcedure("and", andForm),
		newSpecialProcedure("or", orForm),
		newSpecialProcedure("define", defineForm),
		newSpecialProcedure("set!", setBangForm),
		newSpecialProcedure("lambda", lambdaForm),
		newSpecialProcedure("set-car!", setCarForm),
		newSpecialProcedure("set-cdr!", setCdrForm),
	}
	for _, f := range forms {
		env.procs[f.Name] = f
	}
}

func quoteForm(ev *Evaluator, env *Env, args *Value) (*Value, error) {
	if listLength(args) != 1 {
		return nil, newSyntaxError("quote: expected exactly 1 argument")
	}
	return args.car, nil
}

func ifForm(ev *Evaluator, env *Env, args *Value) (*Value, error) {
	n := listLength(args)
	if n != 2 && n != 3 {
		return nil, newSyntaxError("if: expected 2 or 3 arguments, got %d", n)
	}
	condExpr := args.car
	thenExpr := args.cdr.car

	cond, err := ev.Eval(env, condExpr)
	if err != nil {
		return nil, err
	}
	if IsTrue(cond) {
		return ev.Eval(env, thenExpr)
	}
	if n == 3 {
		return ev.Eval(env, args.cdr.cdr.car)
	}
	return nil, nil // Nil: no alternate and the condition was false
}

func andForm(ev *Evaluator, env *Env, args *Value) (*Value, error) {
	if args == nil {
		return boolValue(true), nil
	}
	var last *Value
	for cur := args; cur != nil; cur = cur.cdr {
		if cur.kind != KindPair {
			return nil, newSyntaxError("and: improper argument list")
		}
		v, err := ev.Eval(env, cur.car)
		if err != nil {
			return nil, err
		}
		if !IsTrue(v) {
			return v, nil
		}
		last = v
	}
	return last, nil
}

func orForm(ev *Evaluator, env *Env, args *Value) (*Value, error) {
	for cur := args; cur != nil; cur = cur.cdr {
		if cur.kind != KindPair {
			return nil, newSyntaxError("or: improper argument list")
		}
		v, err := ev.Eval(env, cur.car)
		if err != nil {
			return nil, err
		}
		if IsTrue(v) {
			return v, nil
		}
	}
	return boolValue(false), nil
}

// defineForm implements both shapes of §4.3's define:
//
//	(define name value-expr)
//	(define (name formal ...) body1 body2 ...)
func defineForm(ev *Evaluator, env *Env, args *Value) (*Value, error) {
	if listLength(args) < 2 {
		return nil, newSyntaxError("define: expected at least 2 arguments")
	}
	head := args.car

	if head != nil && head.kind == KindSymbol {
		if listLength(args) != 2 {
			return nil, newSyntaxError("define: expected exactly one value expression")
		}
		val, err := ev.Eval(env, args.cdr.car)
		if err != nil {
			return nil, err
		}
		env.Define(head.sym.Name, val)
		return newSymbolValue(head.sym), nil
	}

	if head != nil && head.kind == KindPair {
		nameVal := head.car
		if nameVal == nil || nameVal.kind != KindSymbol {
			return nil, newSyntaxError("define: malformed procedure name")
		}
		formals := head.cdr
		bodyForms, err := bodyList(args.cdr)
		if err != nil {
			return nil, err
		}
		proc, err := newClosure(nameVal.sym.Name, formals, bodyForms, env)
		if err != nil {
			return nil, err
		}
		env.Define(nameVal.sym.Name, newProcedureValue(proc))
		return newSymbolValue(nameVal.sym), nil
	}

	return nil, newSyntaxError("define: malformed form")
}

func setBangForm(ev *Evaluator, env *Env, args *Value) (*Value, error) {
	if listLength(args) != 2 {
		return nil, newSyntaxError("set!: expected exactly 2 arguments")
	}
	name := args.car
	if name == nil || name.kind != KindSymbol {
		return nil, newSyntaxError("set!: first argument must be a symbol")
	}
	val, err := ev.Eval(env, args.cdr.car)
	if err != nil {
		return nil, err
	}
	if err := env.SetBang(name.sym.Name, val); err != nil {
		return nil, err
	}
	return newSymbolValue(name.sym), nil
}

// lambdaForm returns a closure; args.car is the parameter list, the
// rest is the (non-empty) body.
func lambdaForm(ev *Evaluator, env *Env, args *Value) (*Value, error) {
	if listLength(args) < 2 {
		return nil, newSyntaxError("lambda: expected a parameter list and at least one body form")
	}
	params := args.car
	bodyForms, err := bodyList(args.cdr)
	if err != nil {
		return nil, err
	}
	proc, err := newClosure("", params, bodyForms, env)
	if err != nil {
		return nil, err
	}
	return newProcedureValue(proc), nil
}

// bodyList flattens a proper, non-empty list of body forms, failing
// with a SyntaxError otherwise — the same structural check lambda and
// define apply to their body.
func bodyList(list *Value) ([]*Value, error) {
	var forms []*Value
	for cur := list; cur != nil; cur = cur.cdr {
		if cur.kind != KindPair {
			return nil, newSyntaxError("malformed body")
		}
		forms = append(forms, cur.car)
	}
	if len(forms) == 0 {
		return nil, newSyntaxError("empty body")
	}
	return forms, nil
}

func setCarForm(ev *Evaluator, env *Env, args *Value) (*Value, error) {
	return mutatePair(ev, env, args, "set-car!", func(p *Value, v *Value) { p.car = v })
}

func setCdrForm(ev *Evaluator, env *Env, args *Value) (*Value, error) {
	return mutatePair(ev, env, args, "set-cdr!", func(p *Value, v *Value) { p.cdr = v })
}

func mutatePair(ev *Evaluator, env *Env, args *Value, name string, set func(p, v *Value)) (*Value, error) {
	if listLength(args) != 2 {
		return nil, newSyntaxError("%s: expected exactly 2 arguments", name)
	}
	pairVal, err := ev.Eval(env, args.car)
	if err != nil {
		return nil, err
	}
	if pairVal == nil || pairVal.kind != KindPair {
		return nil, newRuntimeError("%s: not a pair", name)
	}
	newVal, err := ev.Eval(env, args.cdr.car)
	if err != nil {
		return nil, err
	}
	set(pairVal, newVal)
	return pairVal, nil
}
