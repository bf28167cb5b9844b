// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

// Command basic-scheme is an interactive read-eval-print loop for the
// small Scheme-like dialect implemented by package scheme. It reads
// one line at a time, evaluates the first complete form on that line,
// and prints either the result or a typed error.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Gazizonoki/basic-scheme/scheme"
)

var (
	flagConfig  string
	flagPrompt  string
	flagDepth   int
	flagColor   bool
	flagHistory string
	flagVerbose bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "basic-scheme",
		Short:         "Interactive read-eval-print loop for a small Scheme-like dialect",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runRepl,
	}

	flags := cmd.Flags()
	flags.StringVar(&flagConfig, "config", "", "path to a YAML config file")
	flags.StringVar(&flagPrompt, "prompt", "", "interactive prompt (overrides config file)")
	flags.IntVar(&flagDepth, "depth", 0, "maximum non-tail call depth; 0 uses the config/default value")
	flags.BoolVar(&flagColor, "color", true, "colorize result and error output")
	flags.StringVar(&flagHistory, "history", "", "path to a readline history file")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "log each evaluated line at debug level")

	return cmd
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigFile(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlagOverrides(cmd, &cfg)

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	if flagVerbose {
		log.SetLevel(logrus.DebugLevel)
	}

	sess := scheme.NewSession(
		scheme.WithMaxDepth(cfg.MaxDepth),
		scheme.WithLogger(log),
	)
	log.WithField("session", sess.ID).Debug("session started")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.History,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return fmt.Errorf("starting line editor: %w", err)
	}
	defer rl.Close()

	runLoop(rl, sess, cfg.Color)
	return nil
}

// applyFlagOverrides layers flags the user actually set on the command
// line over whatever the config file (or its defaults) provided.
func applyFlagOverrides(cmd *cobra.Command, cfg *driverConfig) {
	flags := cmd.Flags()
	if flags.Changed("prompt") {
		cfg.Prompt = flagPrompt
	}
	if flags.Changed("depth") && flagDepth != 0 {
		cfg.MaxDepth = flagDepth
	}
	if flags.Changed("color") {
		cfg.Color = flagColor
	}
	if flags.Changed("history") {
		cfg.History = flagHistory
	}
}

// runLoop reads one line at a time from rl, evaluates the first form
// on it against sess, and prints the result or error. It returns once
// the line editor reports EOF (Ctrl-D) or an interrupt with no input.
func runLoop(rl *readline.Instance, sess *scheme.Session, useColor bool) {
	resultColor := color.New(color.FgGreen)
	errorColor := color.New(color.FgRed)

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return
			}
			continue
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		if line == "" {
			continue
		}

		out, err := sess.Run(line)
		if err != nil {
			printResult(errorColor, useColor, err.Error())
			continue
		}
		printResult(resultColor, useColor, out)
	}
}

func printResult(c *color.Color, useColor bool, text string) {
	if useColor {
		c.Println(text)
		return
	}
	fmt.Println(text)
}
