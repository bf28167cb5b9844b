// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package scheme

import (
	"strings"
	"testing"
)

var lexTests = []struct {
	in   string
	want []Token
}{
	{"", []Token{{Kind: TokenEOF}}},
	{"   ", []Token{{Kind: TokenEOF}}},
	{"()", []Token{{Kind: TokenOpen}, {Kind: TokenClose}, {Kind: TokenEOF}}},
	{"42", []Token{{Kind: TokenInteger, Int: 42}, {Kind: TokenEOF}}},
	{"-42", []Token{{Kind: TokenInteger, Int: -42}, {Kind: TokenEOF}}},
	{"+", []Token{{Kind: TokenSymbol, Text: "+"}, {Kind: TokenEOF}}},
	{"-", []Token{{Kind: TokenSymbol, Text: "-"}, {Kind: TokenEOF}}},
	{"foo?", []Token{{Kind: TokenSymbol, Text: "foo?"}, {Kind: TokenEOF}}},
	{"set!", []Token{{Kind: TokenSymbol, Text: "set!"}, {Kind: TokenEOF}}},
	{"'a", []Token{{Kind: TokenQuote}, {Kind: TokenSymbol, Text: "a"}, {Kind: TokenEOF}}},
	{"a.b", []Token{{Kind: TokenSymbol, Text: "a"}, {Kind: TokenDot}, {Kind: TokenSymbol, Text: "b"}, {Kind: TokenEOF}}},
}

func TestLexerNext(t *testing.T) {
	for _, test := range lexTests {
		l := newLexer(strings.NewReader(test.in))
		for i, want := range test.want {
			got, err := l.next()
			if err != nil {
				t.Fatalf("%q: token %d: unexpected error: %v", test.in, i, err)
			}
			if got != want {
				t.Errorf("%q: token %d = %+v, expected %+v", test.in, i, got, want)
			}
		}
	}
}

func TestLexerRejectsUnknownCharacter(t *testing.T) {
	l := newLexer(strings.NewReader("@"))
	_, err := l.next()
	if err == nil {
		t.Fatal("expected an error for an unrecognized character")
	}
	if !IsSyntaxError(err) {
		t.Fatalf("expected a syntax error, got %v", err)
	}
}

func TestLexerEOFIsSticky(t *testing.T) {
	l := newLexer(strings.NewReader(""))
	for i := 0; i < 3; i++ {
		tok, err := l.next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.Kind != TokenEOF {
			t.Fatalf("call %d: got %+v, expected TokenEOF", i, tok)
		}
	}
}
