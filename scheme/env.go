// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package scheme

// Env is a lexical frame (§3's "Scope"): a mapping from names to
// variables, a separate mapping from names to procedures, and a
// reference to an optional parent frame. Name lookup walks the parent
// chain; definition writes to the current frame.
type Env struct {
	vars   map[string]*Value
	procs  map[string]*Procedure
	parent *Env
	root   *Env
}

// newGlobalEnv returns a fresh root frame with no parent. The root
// frame is created exactly once per session, per §3's invariant.
func newGlobalEnv() *Env {
	e := &Env{vars: make(map[string]*Value), procs: make(map[string]*Procedure)}
	e.root = e
	return e
}

// newChild returns a frame whose parent is e, for a new call scope.
func (e *Env) newChild() *Env {
	return &Env{
		vars:   make(map[string]*Value),
		procs:  make(map[string]*Procedure),
		parent: e,
		root:   e.root,
	}
}

// Root returns the global frame reachable from e.
func (e *Env) Root() *Env { return e.root }

// LookupVar climbs the parent chain looking for name in the variable
// table of each frame.
func (e *Env) LookupVar(name string) (*Value, bool) {
	for fr := e; fr != nil; fr = fr.parent {
		if v, ok := fr.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// LookupProc climbs the parent chain looking for name in the
// procedure table of each frame.
func (e *Env) LookupProc(name string) (*Procedure, bool) {
	for fr := e; fr != nil; fr = fr.parent {
		if p, ok := fr.procs[name]; ok {
			return p, true
		}
	}
	return nil, false
}

// Define binds name in e's own frame (never a parent), choosing the
// variable or procedure table based on val's kind, per §4.3's define
// rule. A name previously bound in the other table of this same frame
// is cleared, so a name denotes exactly one thing at a time.
func (e *Env) Define(name string, val *Value) {
	if val != nil && val.kind == KindProcedure {
		e.procs[name] = val.proc
		delete(e.vars, name)
		return
	}
	e.vars[name] = val
	delete(e.procs, name)
}

// findBindingFrame returns the nearest frame (climbing from e) that
// already binds name as either a variable or a procedure.
func (e *Env) findBindingFrame(name string) (*Env, bool) {
	for fr := e; fr != nil; fr = fr.parent {
		if _, ok := fr.vars[name]; ok {
			return fr, true
		}
		if _, ok := fr.procs[name]; ok {
			return fr, true
		}
	}
	return nil, false
}

// SetBang rewrites the nearest frame that already binds name, per
// §4.3's set! rule; it fails if no frame binds the name yet.
func (e *Env) SetBang(name string, val *Value) error {
	fr, ok := e.findBindingFrame(name)
	if !ok {
		return newNameError("unbound variable: %s", name)
	}
	fr.Define(name, val)
	return nil
}
