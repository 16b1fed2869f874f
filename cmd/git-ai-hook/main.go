package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bernoussama/git-ai/internal/attribution"
	"github.com/bernoussama/git-ai/internal/hook"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var jsonOutput bool

	newSvc := func() (*hook.Service, error) {
		return hook.New(hook.Options{ConfigPath: configPath})
	}

	cmd := &cobra.Command{
		Use:           "git-ai-hook",
		Short:         "Attribute editor changes to AI agents and record git-ai checkpoints",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	cmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output JSON")

	cmd.AddCommand(newAnalyzeCmd(newSvc, &jsonOutput))
	cmd.AddCommand(newCheckpointCmd(newSvc, &jsonOutput))
	cmd.AddCommand(newStatusCmd(newSvc, &jsonOutput))
	cmd.AddCommand(newVersionCmd(&jsonOutput))

	return cmd
}

func newAnalyzeCmd(newSvc func() (*hook.Service, error), jsonOutput *bool) *cobra.Command {
	var inputPath string
	var showStack bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Attribute a stack snapshot without creating a checkpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newSvc()
			if err != nil {
				return err
			}
			frames, err := readSnapshot(cmd, inputPath)
			if err != nil {
				return err
			}
			res := svc.Analyze(frames)
			if *jsonOutput {
				return print(true, res, "")
			}
			if res.AgentName == "" {
				fmt.Println("no agent attributed")
			} else {
				fmt.Printf("agent: %s (confidence: %s)\n", res.AgentName, res.Confidence)
			}
			fmt.Print("relevant frames:\n" + attribution.FormatRelevant(res.RelevantFrames))
			if showStack {
				fmt.Print("captured stack:\n" + attribution.FormatStack(frames, svc.Config.Attribution.MaxStackFrames))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&inputPath, "input", "", "snapshot file (default: stdin)")
	cmd.Flags().BoolVar(&showStack, "stack", false, "also print the captured stack")
	return cmd
}

func newCheckpointCmd(newSvc func() (*hook.Service, error), jsonOutput *bool) *cobra.Command {
	var inputPath string
	var dir string

	cmd := &cobra.Command{
		Use:   "checkpoint",
		Short: "Attribute a change and record it as a git-ai checkpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newSvc()
			if err != nil {
				return err
			}
			frames, err := readSnapshot(cmd, inputPath)
			if err != nil {
				return err
			}
			report := svc.Checkpoint(cmd.Context(), frames, dir)
			message := "checkpoint skipped"
			if report.Checkpointed {
				who := "human"
				if report.Agent != "" {
					who = report.Agent
				}
				message = fmt.Sprintf("checkpoint recorded (%s)", who)
			}
			return print(*jsonOutput, report, message)
		},
	}
	cmd.Flags().StringVar(&inputPath, "input", "", "snapshot file (default: stdin)")
	cmd.Flags().StringVar(&dir, "dir", ".", "repository root the checkpoint applies to")
	return cmd
}

func newStatusCmd(newSvc func() (*hook.Service, error), jsonOutput *bool) *cobra.Command {
	var recheck bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Probe the git-ai CLI and report availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newSvc()
			if err != nil {
				return err
			}
			st := svc.Status(cmd.Context(), recheck)
			if *jsonOutput {
				return print(true, st, "")
			}
			if st.Available {
				fmt.Printf("%s available, version %s (minimum %s)\n", st.Tool, st.Version, st.MinVersion)
			} else {
				fmt.Printf("%s unavailable or older than %s\n", st.Tool, st.MinVersion)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&recheck, "recheck", false, "discard the cached probe result first")
	return cmd
}

// readSnapshot loads the stack snapshot from --input or the command's stdin.
func readSnapshot(cmd *cobra.Command, inputPath string) ([]attribution.Frame, error) {
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return hook.DecodeSnapshot(f)
	}
	return hook.DecodeSnapshot(cmd.InOrStdin())
}

func print(jsonOutput bool, payload any, message string) error {
	if jsonOutput {
		blob, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(blob))
		return nil
	}
	if message != "" {
		fmt.Println(message)
	}
	return nil
}
