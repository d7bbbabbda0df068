// Package diagnostics renders a structured *errors.Report for a
// terminal. It is a pure formatting helper: the Interner and Global
// Context never call it themselves (per spec.md §7, this core never
// logs), it exists for tests and for any future CLI built on top of
// this core.
package diagnostics

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/sunholo/ailang/internal/errors"
)

// Render formats a Report as a one-line-plus-details string, using the
// teacher's REPL palette (red/cyan/bold/dim) when useColor is true.
func Render(r *errors.Report, useColor bool) string {
	if r == nil {
		return ""
	}

	code := color.New(color.FgRed, color.Bold)
	phase := color.New(color.FgCyan)
	message := color.New(color.Bold)
	dim := color.New(color.Faint)
	if !useColor {
		code.DisableColor()
		phase.DisableColor()
		message.DisableColor()
		dim.DisableColor()
	}

	s := fmt.Sprintf("%s [%s]: %s", code.Sprint(r.Code), phase.Sprint(r.Phase), message.Sprint(r.Message))
	for k, v := range r.Data {
		s += fmt.Sprintf("\n  %s %v", dim.Sprint(k+":"), v)
	}
	return s
}
