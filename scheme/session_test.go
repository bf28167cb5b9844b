// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package scheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var runTests = []struct {
	in  string
	out string
}{
	{"(+ 1 2 3)", "6"},
	{"(* 2 3 4)", "24"},
	{"(- 10 3 2)", "5"},
	{"(- 5)", "5"},
	{"(/ 5)", "5"},
	{"(<)", "#t"},
	{"(< 5)", "#t"},
	{"(/ 20 2 2)", "5"},
	{"(< 1 2 3)", "#t"},
	{"(< 1 3 2)", "#f"},
	{"(if (< 1 2) 'yes 'no)", "yes"},
	{"(if #f 'yes)", "()"},
	{"(and 1 2 3)", "3"},
	{"(and 1 #f 3)", "#f"},
	{"(or #f #f 7)", "7"},
	{"(or #f #f)", "#f"},
	{"(quote (a b c))", "(a b c)"},
	{"'(a b c)", "(a b c)"},
	{"(cons 1 2)", "(1 . 2)"},
	{"(cons 1 (cons 2 (cons 3 ())))", "(1 2 3)"},
	{"(list 1 (+ 1 1) 3)", "(1 2 3)"},
	{"(car (list 1 2 3))", "1"},
	{"(cdr (list 1 2 3))", "(2 3)"},
	{"(list-ref (list 1 2 3) 2)", "3"},
	{"(list-tail (list 1 2 3) 1)", "(2 3)"},
	{"(null? ())", "#t"},
	{"(null? 1)", "#f"},
	{"(pair? (cons 1 2))", "#t"},
	{"(list? (list 1 2 3))", "#t"},
	{"(list? (cons 1 2))", "#f"},
	{"(not #f)", "#t"},
	{"(abs -5)", "5"},
}

func TestRun(t *testing.T) {
	for _, test := range runTests {
		sess := NewSession()
		got, err := sess.Run(test.in)
		require.NoError(t, err, "input %q", test.in)
		assert.Equal(t, test.out, got, "input %q", test.in)
	}
}

// TestRunPersistsGlobalState exercises the requirement that a session
// keeps its global frame across calls to Run, including after a
// failing call.
func TestRunPersistsGlobalState(t *testing.T) {
	sess := NewSession()

	_, err := sess.Run("(define x 10)")
	require.NoError(t, err)

	_, err = sess.Run("(+ x undefined-name)")
	require.Error(t, err)
	assert.True(t, IsNameError(err))

	got, err := sess.Run("(+ x 5)")
	require.NoError(t, err)
	assert.Equal(t, "15", got)
}

func TestRunClosuresAndRecursion(t *testing.T) {
	sess := NewSession()

	_, err := sess.Run(`(define (fact n) (if (< n 2) 1 (* n (fact (- n 1)))))`)
	require.NoError(t, err)

	got, err := sess.Run("(fact 10)")
	require.NoError(t, err)
	assert.Equal(t, "3628800", got)

	_, err = sess.Run(`(define (make-adder n) (lambda (x) (+ x n)))`)
	require.NoError(t, err)
	_, err = sess.Run(`(define add5 (make-adder 5))`)
	require.NoError(t, err)
	got, err = sess.Run("(add5 10)")
	require.NoError(t, err)
	assert.Equal(t, "15", got)
}

func TestRunSetBang(t *testing.T) {
	sess := NewSession()
	_, err := sess.Run("(define counter 0)")
	require.NoError(t, err)
	_, err = sess.Run("(set! counter (+ counter 1))")
	require.NoError(t, err)
	got, err := sess.Run("counter")
	require.NoError(t, err)
	assert.Equal(t, "1", got)
}

func TestRunSetCarCdr(t *testing.T) {
	sess := NewSession()
	_, err := sess.Run("(define p (cons 1 2))")
	require.NoError(t, err)
	_, err = sess.Run("(set-car! p 9)")
	require.NoError(t, err)
	got, err := sess.Run("p")
	require.NoError(t, err)
	assert.Equal(t, "(9 . 2)", got)
}

// TestRunDiscardsTrailingForms exercises the rule that only the first
// form on a line is evaluated, but every form must still parse.
func TestRunDiscardsTrailingForms(t *testing.T) {
	sess := NewSession()
	got, err := sess.Run("(+ 1 2) (+ 100 100)")
	require.NoError(t, err)
	assert.Equal(t, "3", got)

	_, err = sess.Run("(+ 1 2) (+ 1")
	require.Error(t, err)
	assert.True(t, IsSyntaxError(err))
}

var errorKindTests = []struct {
	name string
	in   string
	kind ErrorKind
}{
	{"unterminated list", "(+ 1 2", SyntaxErrorKind},
	{"malformed define", "(define)", SyntaxErrorKind},
	{"unbound variable", "nosuchname", NameErrorKind},
	{"unbound procedure", "(nosuchproc 1 2)", NameErrorKind},
	{"wrong type to car", "(car 5)", RuntimeErrorKind},
	{"division by zero", "(/ 1 0)", RuntimeErrorKind},
	{"wrong arity closure", "((lambda (x y) x) 1)", RuntimeErrorKind},
}

func TestRunErrorKinds(t *testing.T) {
	for _, test := range errorKindTests {
		t.Run(test.name, func(t *testing.T) {
			sess := NewSession()
			_, err := sess.Run(test.in)
			require.Error(t, err)
			var ie *InterpreterError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, test.kind, ie.Kind)
		})
	}
}

func TestRunCyclicPrint(t *testing.T) {
	sess := NewSession()
	_, err := sess.Run("(define p (cons 1 2))")
	require.NoError(t, err)
	_, err = sess.Run("(set-cdr! p p)")
	require.NoError(t, err)
	got, err := sess.Run("p")
	require.NoError(t, err)
	assert.Equal(t, "(1 . (...))", got)
}

func TestSessionHasID(t *testing.T) {
	a := NewSession()
	b := NewSession()
	assert.NotEqual(t, a.ID, b.ID)
}

func TestWithMaxDepth(t *testing.T) {
	sess := NewSession(WithMaxDepth(5))
	_, err := sess.Run(`(define (loop n) (loop (+ n 1)))`)
	require.NoError(t, err)
	_, err = sess.Run("(loop 0)")
	require.Error(t, err)
	assert.True(t, IsRuntimeError(err))
}
