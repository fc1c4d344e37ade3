package repl

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/peterh/liner"

	"github.com/leengari/mini-search/internal/engine"
	"github.com/leengari/mini-search/internal/executor"
)

func Start(eng *engine.Engine) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	fmt.Println("Welcome to mini-search")
	fmt.Println("Type a boolean query (terms with AND, OR, ANDNOT).")
	fmt.Println("Commands: \\explain toggles plan output, \\strict toggles strict planning, 'exit' or '\\q' quits.")

	opts := engine.DefaultOptions()

	for {
		input, err := line.Prompt("> ")
		if err != nil {
			// Ctrl-C or EOF
			return
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if input == "exit" || input == "\\q" {
			break
		}

		if input == "\\explain" {
			opts.Explain = !opts.Explain
			fmt.Printf("explain output: %v\n", opts.Explain)
			continue
		}

		if input == "\\strict" {
			opts.Strict = !opts.Strict
			fmt.Printf("strict planning: %v\n", opts.Strict)
			continue
		}

		result, err := eng.ExecuteWith(input, opts)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		PrintResult(os.Stdout, result, opts.Explain)
	}
}

func PrintResult(w io.Writer, res *executor.Result, showPlan bool) {
	if res.Error != "" {
		fmt.Fprintf(w, "Error: %s\n", res.Error)
		return
	}

	if showPlan && res.Plan != "" {
		fmt.Fprintln(w, res.Plan)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "doc_id")
	fmt.Fprintln(tw, "---")
	for _, docID := range res.Hits {
		fmt.Fprintf(tw, "%d\n", docID)
	}
	tw.Flush()

	fmt.Fprintf(w, "%d hit(s)", res.Count)
	if res.Count > len(res.Hits) {
		fmt.Fprintf(w, " (showing %d)", len(res.Hits))
	}
	fmt.Fprintf(w, "  estimate=%.4f cost=%.4f elapsed=%s\n",
		res.Estimate, res.Cost, res.Elapsed)
}
