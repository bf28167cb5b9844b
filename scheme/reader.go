// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package scheme

import (
	"errors"
	"io"
)

// errNoMoreForms is a sentinel returned by ReadForm once the input is
// exhausted with no token pending — it signals "there was nothing
// left to read", not a malformed input.
var errNoMoreForms = errors.New("scheme: no more forms")

// Reader consumes tokens from a lexer and builds one s-expression
// tree per call to ReadForm, per the grammar in §4.2:
//
//	form := atom | list | "'" form
//	list := "(" form* [ "." form ] ")"
//	atom := Constant | Symbol
type Reader struct {
	lex    *lexer
	peeked *Token
}

// NewReader returns a Reader that reads forms from rd.
func NewReader(rd io.RuneReader) *Reader {
	return &Reader{lex: newLexer(rd)}
}

func (r *Reader) next() (Token, error) {
	if r.peeked != nil {
		t := *r.peeked
		r.peeked = nil
		return t, nil
	}
	return r.lex.next()
}

func (r *Reader) back(t Token) {
	r.peeked = &t
}

// ReadForm reads and returns the next top-level form. It returns
// errNoMoreForms (wrapped by nothing — compare with errors.Is) once
// the input is exhausted without a pending token.
func (r *Reader) ReadForm() (*Value, error) {
	tok, err := r.next()
	if err != nil {
		return nil, err
	}
	if tok.Kind == TokenEOF {
		return nil, errNoMoreForms
	}
	return r.form(tok)
}

// form parses a single form given its already-consumed leading token.
func (r *Reader) form(tok Token) (*Value, error) {
	switch tok.Kind {
	case TokenInteger:
		return newInteger(tok.Int), nil
	case TokenSymbol:
		return newSymbolValue(intern(tok.Text)), nil
	case TokenQuote:
		inner, err := r.requireForm()
		if err != nil {
			return nil, err
		}
		return newPair(newSymbolValue(symQuote), newPair(inner, nil)), nil
	case TokenOpen:
		return r.list()
	case TokenDot:
		return nil, newSyntaxError("unexpected '.'")
	case TokenClose:
		return nil, newSyntaxError("unexpected ')'")
	case TokenEOF:
		return nil, newSyntaxError("unexpected end of input")
	default:
		return nil, newSyntaxError("unrecognized token")
	}
}

// requireForm reads the next token and parses it as a form, treating
// end-of-input as a syntax error (used where the grammar demands
// exactly one more form, e.g. after a quote or a dot).
func (r *Reader) requireForm() (*Value, error) {
	tok, err := r.next()
	if err != nil {
		return nil, err
	}
	if tok.Kind == TokenEOF {
		return nil, newSyntaxError("unexpected end of input")
	}
	return r.form(tok)
}

// list parses the body of a list whose opening '(' has already been
// consumed.
func (r *Reader) list() (*Value, error) {
	tok, err := r.next()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case TokenClose:
		return nil, nil // ()
	case TokenDot:
		return nil, newSyntaxError("unexpected '.' at start of list")
	case TokenEOF:
		return nil, newSyntaxError("unterminated list")
	}
	head, err := r.form(tok)
	if err != nil {
		return nil, err
	}
	rest, err := r.listRest()
	if err != nil {
		return nil, err
	}
	return newPair(head, rest), nil
}

// listRest parses the remainder of a list after its first element.
func (r *Reader) listRest() (*Value, error) {
	tok, err := r.next()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case TokenClose:
		return nil, nil
	case TokenEOF:
		return nil, newSyntaxError("unterminated list")
	case TokenDot:
		tail, err := r.requireForm()
		if err != nil {
			return nil, err
		}
		closeTok, err := r.next()
		if err != nil {
			return nil, err
		}
		if closeTok.Kind != TokenClose {
			return nil, newSyntaxError("expected ')' after dotted tail")
		}
		return tail, nil
	default:
		head, err := r.form(tok)
		if err != nil {
			return nil, err
		}
		rest, err := r.listRest()
		if err != nil {
			return nil, err
		}
		return newPair(head, rest), nil
	}
}
