// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package scheme

import "github.com/sirupsen/logrus"

// Evaluator walks an s-expression against a lexical environment,
// dispatching special forms and built-in or user-defined procedures,
// per §4.3. It tracks call depth so a runaway (non-tail) recursion
// fails with a RuntimeError instead of crashing the host process,
// mirroring lisp1_5.Context's stackDepth/maxStackDepth pair.
type Evaluator struct {
	depth    int
	maxDepth int
	log      *logrus.Entry
}

func newEvaluator(maxDepth int, log *logrus.Entry) *Evaluator {
	return &Evaluator{maxDepth: maxDepth, log: log}
}

// Eval returns the value of expr in env, per the dispatch rules of
// §4.3.
func (ev *Evaluator) Eval(env *Env, expr *Value) (*Value, error) {
	if expr == nil {
		return nil, newRuntimeError("bad list: () is not a valid expression")
	}
	switch expr.kind {
	case KindInteger, KindProcedure:
		return expr, nil
	case KindSymbol:
		return ev.evalSymbol(env, expr)
	case KindPair:
		return ev.evalCall(env, expr)
	default:
		return nil, newRuntimeError("cannot evaluate value")
	}
}

func (ev *Evaluator) evalSymbol(env *Env, expr *Value) (*Value, error) {
	if expr.sym == symTrue || expr.sym == symFalse {
		return expr, nil
	}
	if proc, ok := env.LookupProc(expr.sym.Name); ok {
		return newProcedureValue(proc), nil
	}
	if v, ok := env.LookupVar(expr.sym.Name); ok {
		return v, nil
	}
	return nil, newNameError("unbound variable: %s", expr.sym.Name)
}

func (ev *Evaluator) evalCall(env *Env, expr *Value) (*Value, error) {
	ev.depth++
	defer func() { ev.depth-- }()
	if ev.maxDepth > 0 && ev.depth > ev.maxDepth {
		return nil, newRuntimeError("stack too deep")
	}

	proc, err := ev.resolveOperator(env, expr.car)
	if err != nil {
		return nil, err
	}
	if proc.Special {
		return proc.special(ev, env, expr.cdr)
	}
	args, err := ev.evalArgs(env, expr.cdr)
	if err != nil {
		return nil, err
	}
	return ev.apply(proc, args)
}

// resolveOperator resolves a call's car to a procedure, recursively
// evaluating until a Symbol naming one or a Procedure value appears,
// per §4.3's "the car is resolved to a procedure" rule.
func (ev *Evaluator) resolveOperator(env *Env, carExpr *Value) (*Procedure, error) {
	for {
		if carExpr == nil {
			return nil, newRuntimeError("() is not a function")
		}
		switch carExpr.kind {
		case KindSymbol:
			if carExpr.sym == symTrue || carExpr.sym == symFalse {
				return nil, newRuntimeError("%s is not a function", carExpr.sym.Name)
			}
			proc, ok := env.LookupProc(carExpr.sym.Name)
			if !ok {
				return nil, newNameError("unbound procedure: %s", carExpr.sym.Name)
			}
			return proc, nil
		case KindProcedure:
			return carExpr.proc, nil
		case KindPair:
			next, err := ev.Eval(env, carExpr)
			if err != nil {
				return nil, err
			}
			carExpr = next
		default:
			return nil, newRuntimeError("%s is not a function", Sprint(carExpr))
		}
	}
}

// evalArgs evaluates each element of a proper argument list left to
// right, per the "ordinary procedures evaluate each argument
// left-to-right" rule.
func (ev *Evaluator) evalArgs(env *Env, list *Value) ([]*Value, error) {
	var out []*Value
	for list != nil {
		if list.kind != KindPair {
			return nil, newRuntimeError("improper argument list")
		}
		v, err := ev.Eval(env, list.car)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		list = list.cdr
	}
	return out, nil
}

// apply calls proc with already-evaluated args, per "User-procedure
// application" (§4.3): a fresh frame is created whose parent is the
// closure's captured environment — never the caller's frame — giving
// proper lexical scoping.
func (ev *Evaluator) apply(proc *Procedure, args []*Value) (*Value, error) {
	if proc.Kind == ProcBuiltin {
		return proc.builtin(args)
	}

	if len(proc.paramNames) != len(args) {
		return nil, newRuntimeError("%s: expected %d argument(s), got %d", proc.Name, len(proc.paramNames), len(args))
	}

	callEnv := proc.env.newChild()
	for i, name := range proc.paramNames {
		callEnv.vars[name] = args[i]
	}

	var result *Value
	var err error
	for _, form := range proc.body {
		result, err = ev.Eval(callEnv, form)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
