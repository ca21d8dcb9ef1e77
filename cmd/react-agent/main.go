// Command react-agent answers questions with a ReAct tool-dispatch loop.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bububa/react-agents/agents/react"
	"github.com/bububa/react-agents/components"
	"github.com/bububa/react-agents/config"
	"github.com/bububa/react-agents/logging"
)

// defaultQuestion is asked when no question is given
const defaultQuestion = "What is Knowledge Bases for Amazon Bedrock? Multiply the month (numerical) of the announcement date of the Knowledge Bases feature by 3."

type cliOptions struct {
	configPath string
	verbose    bool
	maxSteps   int
	dump       bool
	factory    CompleterFactory
}

// dumpDoc is the YAML document printed by --dump
type dumpDoc struct {
	Result     *react.Result     `yaml:"result,omitempty"`
	Error      string            `yaml:"error,omitempty"`
	Transcript []components.Turn `yaml:"transcript"`
}

func newRootCmd(opts *cliOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "react-agent",
		Short:         "react-agent - answer questions with tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every step and echo the transcript")

	askCmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Answer a question",
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.TrimSpace(strings.Join(args, " "))
			if question == "" {
				question = defaultQuestion
			}
			return runAsk(cmd.Context(), opts, question, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	askCmd.Flags().IntVar(&opts.maxSteps, "max-steps", 0, "Override the step budget")
	askCmd.Flags().BoolVar(&opts.dump, "dump", false, "Print the result and transcript as YAML")

	toolsCmd := &cobra.Command{
		Use:   "tools",
		Short: "List the configured tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTools(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	rootCmd.AddCommand(askCmd, toolsCmd)
	return rootCmd
}

func main() {
	if err := newRootCmd(new(cliOptions)).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setup(ctx context.Context, opts *cliOptions, stderr io.Writer, agentOpts ...react.Option) (*react.Agent, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.verbose {
		cfg.Log.Level = "debug"
	}
	if opts.maxSteps > 0 {
		cfg.Agent.MaxSteps = opts.maxSteps
	}
	logger := logging.NewLogger(stderr, cfg.Log)
	return Bootstrap(ctx, cfg, opts.factory, logger, agentOpts...)
}

func runAsk(ctx context.Context, opts *cliOptions, question string, stdout io.Writer, stderr io.Writer) error {
	var agentOpts []react.Option
	if opts.verbose {
		agentOpts = append(agentOpts, react.WithStepHook(func(ctx context.Context, a *react.Agent, e react.StepEvent) {
			fmt.Fprintf(stderr, "--- step %d ---\n%s\n", e.Step, strings.TrimSpace(e.Raw))
		}))
	}
	agent, err := setup(ctx, opts, stderr, agentOpts...)
	if err != nil {
		return err
	}
	ret, runErr := agent.Run(ctx, question)
	if opts.dump {
		doc := dumpDoc{Result: ret}
		if ret != nil {
			doc.Transcript = ret.Transcript.Turns()
		}
		var rErr *react.Error
		if errors.As(runErr, &rErr) && rErr.Transcript != nil {
			doc.Transcript = rErr.Transcript.Turns()
		}
		if runErr != nil {
			doc.Error = runErr.Error()
		}
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
		return runErr
	}
	if runErr != nil {
		return runErr
	}
	fmt.Fprintln(stdout, ret.Answer)
	return nil
}

func runTools(ctx context.Context, opts *cliOptions, stdout io.Writer, stderr io.Writer) error {
	agent, err := setup(ctx, opts, stderr)
	if err != nil {
		return err
	}
	for _, spec := range agent.Tools().Specs() {
		fmt.Fprintf(stdout, "%s: %s\n", spec.Name, spec.Description)
	}
	return nil
}

