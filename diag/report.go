// SPDX-License-Identifier: EPL-2.0

package diag

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	rule       = "============================================================"
	tailLines  = 5
	indentText = "    "
)

// Render writes the report as human-readable text.
func (r Report) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, rule)
	fmt.Fprintln(bw, "Solar Audio - Recording Diagnostics")
	fmt.Fprintln(bw, rule)
	if r.RunID != "" {
		fmt.Fprintf(bw, "Run: %s\n", r.RunID)
	}

	for _, note := range r.Notes {
		fmt.Fprintf(bw, "NOTE: %s\n", note)
	}

	for i, res := range r.Results {
		fmt.Fprintf(bw, "\n%d. %s (%s)\n", i+1, res.Check.Name, res.Check.Policy)
		fmt.Fprintf(bw, "%s$ %s\n", indentText, res.Check.Command)
		writeTail(bw, "stdout", res.Outcome.Stdout)
		writeTail(bw, "stderr", res.Outcome.Stderr)
		if res.Outcome.Err != nil {
			fmt.Fprintf(bw, "%serror: %v\n", indentText, res.Outcome.Err)
		}
		fmt.Fprintf(bw, "%s%s %s\n", indentText, marker(res), message(res))
	}

	if len(r.Skipped) > 0 {
		fmt.Fprintf(bw, "\nSkipped after gating failure: %s\n", strings.Join(r.Skipped, ", "))
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, rule)
	switch {
	case r.Failed:
		fmt.Fprintln(bw, "Result: FAILED")
	case len(r.Warnings()) > 0:
		fmt.Fprintf(bw, "Result: PASSED with %d warning(s)\n", len(r.Warnings()))
	default:
		fmt.Fprintln(bw, "Result: PASSED")
	}
	fmt.Fprintln(bw, rule)

	if r.Guidance != "" {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "Manual Test Instructions")
		fmt.Fprintln(bw, rule)
		fmt.Fprintln(bw, r.Guidance)
	}

	return bw.Flush()
}

func marker(res Result) string {
	switch {
	case res.Passed():
		return "[PASS]"
	case res.Warning:
		return "[WARN]"
	default:
		return "[FAIL]"
	}
}

func message(res Result) string {
	msg := res.Check.FailMessage
	if res.Passed() {
		msg = res.Check.PassMessage
	}
	if msg == "" {
		msg = res.Status.String()
	}

	switch res.Status {
	case StatusTimeout:
		return msg + " (timed out)"
	case StatusSpawnError:
		return msg + " (could not start command)"
	}

	return msg
}

// writeTail prints the last tailLines lines of text, like tail -5.
func writeTail(w io.Writer, label, text string) {
	text = strings.TrimRight(text, "\r\n\t ")
	if text == "" {
		return
	}

	lines := strings.Split(text, "\n")
	if len(lines) > tailLines {
		lines = lines[len(lines)-tailLines:]
	}

	fmt.Fprintf(w, "%s%s:\n", indentText, label)
	for _, line := range lines {
		fmt.Fprintf(w, "%s%s%s\n", indentText, indentText, strings.TrimRight(line, "\r"))
	}
}
