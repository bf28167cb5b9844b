// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package scheme

import (
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultMaxDepth = 10000

// Option configures a Session at construction time, mirroring the
// teacher's Config/NewContext pair with the functional-options idiom
// the wider corpus uses for multi-field, mostly-optional setup.
type Option func(*Session)

// WithMaxDepth overrides the non-tail call-depth limit a Session
// enforces before failing a recursive evaluation with a RuntimeError.
func WithMaxDepth(n int) Option {
	return func(s *Session) { s.ev.maxDepth = n }
}

// WithLogger attaches a logger a Session uses for Debug-level tracing
// of each Run call. Without this option a Session uses its own logrus
// logger set to Warn level; since Run logs only at Debug level,
// nothing is printed unless a caller opts in.
func WithLogger(log *logrus.Logger) Option {
	return func(s *Session) { s.log = log }
}

// Session is one REPL-style interpreter instance: a persistent global
// environment plus the evaluator that walks it, identified by an
// opaque ID so a host embedding several sessions can correlate log
// lines to the session that produced them.
type Session struct {
	ID  uuid.UUID
	env *Env
	ev  *Evaluator
	log *logrus.Logger
}

// NewSession returns a ready-to-use Session: a fresh global
// environment with every special form and builtin procedure already
// registered, per spec.md §6's "new_session" interface.
func NewSession(opts ...Option) *Session {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)

	env := newGlobalEnv()
	registerSpecialForms(env)
	registerBuiltins(env)

	s := &Session{
		ID:  uuid.New(),
		env: env,
		log: log,
	}
	s.ev = newEvaluator(defaultMaxDepth, log.WithField("session", s.ID))
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run reads and evaluates input against the session's persistent
// environment, per spec.md §6's "run" interface. Per §12's
// original_source-resolved rule, the entire input is read form by
// form: the first form is the one evaluated, but every subsequent
// form on the line is still read (and discarded) so that a syntax
// error anywhere in the line — not only in the first form — is
// reported, exactly mirroring the original interpreter's Run loop.
//
// Run returns the printed representation of the first form's value,
// and any error encountered while reading or evaluating.
func (s *Session) Run(input string) (string, error) {
	s.log.WithField("session", s.ID).Debugf("run: %q", input)

	r := NewReader(strings.NewReader(input))

	first, err := r.ReadForm()
	if err == errNoMoreForms {
		err = newSyntaxError("no form to evaluate")
	}
	if err != nil {
		s.logResult(err)
		return "", err
	}

	if err := s.discardRemainingForms(r); err != nil {
		s.logResult(err)
		return "", err
	}

	val, err := s.ev.Eval(s.env, first)
	if err != nil {
		s.logResult(err)
		return "", err
	}

	out := Sprint(val)
	s.logResult(nil)
	return out, nil
}

// discardRemainingForms reads every form after the first one on the
// line purely to surface a trailing syntax error; it never evaluates
// what it reads.
func (s *Session) discardRemainingForms(r *Reader) error {
	for {
		_, err := r.ReadForm()
		if err == errNoMoreForms {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) logResult(err error) {
	entry := s.log.WithField("session", s.ID)
	if err != nil {
		entry.WithError(err).Debug("run failed")
		return
	}
	entry.Debug("run succeeded")
}
