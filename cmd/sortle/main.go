// Command sortle is the thin CLI collaborator of spec.md §6: it reads a
// file, invokes the parser, invokes Run, and prints the final name.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/graue/sortle/internal/engine"
	"github.com/graue/sortle/internal/sortleerr"
	"github.com/graue/sortle/internal/sortlelog"
	"github.com/graue/sortle/internal/sortleparse"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("SORTLE")
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "sortle <path>",
		Short:         "Run a Sortle program",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], v)
		},
	}

	cmd.Flags().BoolP("verbose", "v", false, "log each rewrite step to stderr")
	cmd.Flags().Int("max-steps", 0, "abort after this many steps (0 = unbounded)")
	cmd.Flags().String("format", "text", `output format: "text" or "json"`)
	_ = v.BindPFlag("verbose", cmd.Flags().Lookup("verbose"))
	_ = v.BindPFlag("max_steps", cmd.Flags().Lookup("max-steps"))
	_ = v.BindPFlag("format", cmd.Flags().Lookup("format"))

	return cmd
}

func run(path string, v *viper.Viper) error {
	sortlelog.SetVerbose(v.GetBool("verbose"))

	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		return err
	}

	exprs, err := sortleparse.Parse(string(src))
	if err != nil {
		printError(err)
		return err
	}

	state := engine.NewState(exprs)
	steps := 0
	maxSteps := v.GetInt("max_steps")
	observer := func(engine.StepTrace) {
		steps++
	}

	result, err := runBounded(state, observer, maxSteps)
	if err != nil {
		printError(err)
		return err
	}

	printResult(result, steps, v.GetString("format"))
	return nil
}

// runBounded wraps engine.Run with an optional step budget: the core
// itself provides no timeout (spec.md §4.6), so a safety bound for
// divergent programs belongs to this collaborator, not the engine.
func runBounded(state *engine.State, observer func(engine.StepTrace), maxSteps int) (string, error) {
	if maxSteps <= 0 {
		return engine.Run(state, observer)
	}
	if state.Len() == 0 {
		return "", &sortleerr.EmptyProgramError{}
	}
	ip, count := 0, 0
	for state.Len() > 1 {
		if count >= maxSteps {
			return "", fmt.Errorf("exceeded max-steps (%d) without halting", maxSteps)
		}
		next, err := engine.Step(state, ip, observer)
		if err != nil {
			return "", err
		}
		ip = next
		count++
	}
	return state.At(0).Name, nil
}

func printResult(result string, steps int, format string) {
	if format == "json" {
		enc, _ := json.Marshal(struct {
			Result string `json:"result"`
			Steps  int    `json:"steps"`
		}{result, steps})
		fmt.Println(string(enc))
		return
	}
	fmt.Println(result)
}

func printError(err error) {
	var perr *sortleerr.ParseError
	if errors.As(err, &perr) {
		if snippet := perr.Snippet(); snippet != "" {
			fmt.Fprintf(os.Stderr, "parse error at %d:%d:\n%s\n", perr.Row, perr.Col, snippet)
			return
		}
		fmt.Fprintf(os.Stderr, "error: %s\n", perr.Error())
		return
	}

	var rerr *sortleerr.RegexCompileError
	if errors.As(err, &rerr) {
		fmt.Fprintf(os.Stderr, "error: %s\n", rerr.Error())
		fmt.Fprintf(os.Stderr, "when evaluating regex: %s\n", rerr.Pattern)
		return
	}

	fmt.Fprintf(os.Stderr, "error: %s\n", err)
}
