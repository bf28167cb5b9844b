// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package scheme

import "testing"

func TestSprintAtoms(t *testing.T) {
	tests := []struct {
		v   *Value
		out string
	}{
		{nil, "()"},
		{newInteger(42), "42"},
		{newInteger(-1), "-1"},
		{newSymbolValue(intern("foo")), "foo"},
		{boolValue(true), "#t"},
		{boolValue(false), "#f"},
	}
	for _, test := range tests {
		if got := Sprint(test.v); got != test.out {
			t.Errorf("Sprint(%v) = %q, expected %q", test.v, got, test.out)
		}
	}
}

func TestSprintSelfCycle(t *testing.T) {
	p := newPair(newInteger(1), newInteger(2))
	p.cdr = p // p now points to itself: (1 . (...))
	const want = "(1 . (...))"
	if got := Sprint(p); got != want {
		t.Errorf("Sprint(self-cycle) = %q, expected %q", got, want)
	}
}

func TestSprintSpineCycle(t *testing.T) {
	// a -> b -> a: a spine that loops back to its own head.
	a := newPair(newInteger(1), nil)
	b := newPair(newInteger(2), a)
	a.cdr = b
	const want = "(1 2 . (...))"
	if got := Sprint(a); got != want {
		t.Errorf("Sprint(spine-cycle) = %q, expected %q", got, want)
	}
}

func TestSprintNestedCycleInCar(t *testing.T) {
	inner := newPair(newInteger(9), nil)
	inner.cdr = inner
	outer := newPair(inner, nil)
	const want = "((9 . (...)))"
	if got := Sprint(outer); got != want {
		t.Errorf("Sprint(nested-cycle) = %q, expected %q", got, want)
	}
}

func TestSprintDottedPair(t *testing.T) {
	v := newPair(newInteger(1), newInteger(2))
	const want = "(1 . 2)"
	if got := Sprint(v); got != want {
		t.Errorf("Sprint(dotted) = %q, expected %q", got, want)
	}
}

func TestSprintProperList(t *testing.T) {
	v := valuesToList([]*Value{newInteger(1), newInteger(2), newInteger(3)})
	const want = "(1 2 3)"
	if got := Sprint(v); got != want {
		t.Errorf("Sprint(list) = %q, expected %q", got, want)
	}
}
