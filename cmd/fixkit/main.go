// Package main provides the CLI entrypoint for fixkit.
//
// fixkit is the helper core of a rule-based text-transformation tool. The
// binary is a thin demo around the library packages: it reads a rule-set
// YAML document on stdin, prints the deterministic execution order, and
// reports deprecated rules through the deprecation registry. With
// FIXKIT_FUTURE_MODE set, deprecated rules fail the run instead.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"fixkit/deprecation"
	"fixkit/rules"
)

func main() {
	err := run(os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fixkit:", err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read rule set from stdin: %w", err)
	}

	set, err := rules.Parse(data)
	if err != nil {
		return err
	}

	diags := set.Validate()
	for _, w := range diags.Warnings {
		fmt.Fprintln(os.Stderr, "fixkit: warning:", w.String())
	}

	err = diags.Error()
	if err != nil {
		return err
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	for i, r := range set.Ordered() {
		fmt.Fprintf(out, "%2d. %s (priority %d)\n", i+1, r.Name(), r.Priority())
	}

	reg := deprecation.NewRegistry(deprecation.WithLogger(log))

	err = set.TriggerDeprecations(reg)
	if err != nil {
		return err
	}

	if triggered := reg.Triggered(); len(triggered) > 0 {
		fmt.Fprintf(out, "%d deprecation notice(s) recorded\n", len(triggered))
	}

	return nil
}
