// Package output provides utilities for formatting and displaying blend outcomes.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/openblend/blend-planner/internal/planner"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(outcome planner.Outcome) {
	FprintPretty(os.Stdout, outcome)
}

// FprintPretty writes the human-readable form of an outcome to w.
func FprintPretty(w io.Writer, outcome planner.Outcome) {
	if !outcome.Usable() {
		fmt.Fprintf(w, "no usable blend: termination=%s status=%s\n", outcome.Termination, outcome.Status)
		return
	}

	p := message.NewPrinter(language.English)
	fmt.Fprintf(w, "--- Blend recipe (%s) ---\n", outcome.Termination)
	fmt.Fprintf(w, "Ingredient | Volume\n")
	fmt.Fprintf(w, "__________ | ______\n")

	names := make([]string, 0, len(outcome.Volumes))
	for name := range outcome.Volumes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s | %g\n", name, outcome.Volumes[name])
	}
	_, _ = p.Fprintf(w, "Total cost: %g\n", *outcome.Cost)
}

// JSONFormat outputs the outcome as indented JSON on stdout.
func JSONFormat(outcome planner.Outcome) error {
	return FprintJSON(os.Stdout, outcome)
}

// FprintJSON writes the outcome as indented JSON to w.
func FprintJSON(w io.Writer, outcome planner.Outcome) error {
	data, err := json.MarshalIndent(outcome, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode outcome: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
