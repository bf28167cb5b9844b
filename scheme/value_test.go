// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package scheme

import "testing"

func TestIsProperList(t *testing.T) {
	tests := []struct {
		name string
		v    *Value
		want bool
	}{
		{"nil", nil, true},
		{"proper list", valuesToList([]*Value{newInteger(1), newInteger(2)}), true},
		{"dotted pair", newPair(newInteger(1), newInteger(2)), false},
		{"non-pair", newInteger(5), false},
	}
	for _, test := range tests {
		if got := isProperList(test.v); got != test.want {
			t.Errorf("isProperList(%s) = %v, expected %v", test.name, got, test.want)
		}
	}
}

func TestIsProperListCycleTerminates(t *testing.T) {
	a := newPair(newInteger(1), nil)
	b := newPair(newInteger(2), a)
	a.cdr = b
	if isProperList(a) {
		t.Fatal("isProperList on a cyclic pair graph should report false")
	}
}

func TestInternIdentity(t *testing.T) {
	a := intern("foo")
	b := intern("foo")
	if a != b {
		t.Fatal("intern should return the same *Symbol for the same name")
	}
	if intern("bar") == a {
		t.Fatal("intern should return distinct *Symbol values for distinct names")
	}
}

func TestIsTrue(t *testing.T) {
	if !IsTrue(nil) {
		t.Error("Nil should be truthy")
	}
	if !IsTrue(newInteger(0)) {
		t.Error("the integer 0 should be truthy")
	}
	if !IsTrue(boolValue(true)) {
		t.Error("#t should be truthy")
	}
	if IsTrue(boolValue(false)) {
		t.Error("#f should be the only falsy value")
	}
}
