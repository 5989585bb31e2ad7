package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marover/webpilot/internals/cliutil"
	"github.com/marover/webpilot/internals/desktop"
	"github.com/marover/webpilot/internals/schemas"
	"github.com/marover/webpilot/internals/timeouts"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List task plans known to the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _ := newClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), timeouts.SecondDefault)
			defer cancel()

			payload, err := client.ListTasks(ctx)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(cmd, payload)
			}
			cliutil.PrintTaskList(cmd.OutOrStdout(), payload.Tasks)
			return nil
		},
	}
}

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate <instruction>",
		Short: "Turn a free-text instruction into a task plan",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			instruction := strings.TrimSpace(strings.Join(args, " "))
			if instruction == "" {
				return errors.New("instruction is required")
			}

			client, _ := newClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), timeouts.MinuteGenerate)
			defer cancel()

			plan, err := client.GenerateTask(ctx, instruction)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(cmd, plan)
			}
			cliutil.PrintPlan(cmd.OutOrStdout(), plan)
			return nil
		},
	}
}

func newModifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modify <task> <instruction>",
		Short: "Revise an existing plan with a free-text instruction",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			task := strings.TrimSpace(args[0])
			modification := strings.TrimSpace(strings.Join(args[1:], " "))
			if task == "" || modification == "" {
				return errors.New("task and modification are required")
			}

			client, _ := newClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), timeouts.MinuteGenerate)
			defer cancel()

			plan, err := client.ModifyTask(ctx, task, modification)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(cmd, plan)
			}
			cliutil.PrintPlan(cmd.OutOrStdout(), plan)
			return nil
		},
	}
}

func newExecCmd() *cobra.Command {
	var withVideo bool
	var noOpen bool

	cmd := &cobra.Command{
		Use:   "exec <task>",
		Short: "Execute a stored plan, optionally recording a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task := strings.TrimSpace(args[0])
			client, _ := newClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), timeouts.MinuteExecute)
			defer cancel()

			if !withVideo {
				result, err := client.ExecuteTask(ctx, task)
				if result.Raw != nil {
					fmt.Fprintln(cmd.OutOrStdout(), result.String())
				}
				return err
			}

			result, err := client.ExecuteTaskWithVideo(ctx, task)
			if err != nil {
				return err
			}
			if !result.Success() {
				return fmt.Errorf("execution failed: %s", result.Message)
			}
			videoURL := client.VideoURL(result.Video)
			cliutil.PrintVideoReady(cmd.OutOrStdout(), videoURL)
			if !noOpen {
				_ = desktop.OpenURL(videoURL)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withVideo, "video", false, "record the execution and open the video")
	cmd.Flags().BoolVar(&noOpen, "no-open", false, "print the video address without opening it")
	return cmd
}

func newDevCmd() *cobra.Command {
	var rawOnly bool

	cmd := &cobra.Command{
		Use:   "dev <task>",
		Short: "Show a plan's readable text and raw JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _ := newClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), timeouts.SecondDefault)
			defer cancel()

			detail, err := client.DeveloperTask(ctx, strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}

			if !rawOnly && detail.ReadableText != "" {
				fmt.Fprint(cmd.OutOrStdout(), detail.ReadableText)
				fmt.Fprintln(cmd.OutOrStdout())
			}
			pretty, err := json.MarshalIndent(detail.Plan, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(pretty))
			return nil
		},
	}

	cmd.Flags().BoolVar(&rawOnly, "raw", false, "print only the raw JSON")
	return cmd
}

func printJSON(cmd *cobra.Command, payload any) error {
	pretty, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(pretty))
	return nil
}

func newExecJSONCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec-json [file]",
		Short: "Execute a hand-edited plan from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			// Local validation happens before any network call.
			var plan schemas.Plan
			if err := json.Unmarshal(data, &plan); err != nil {
				return fmt.Errorf("invalid JSON: %w", err)
			}
			if err := schemas.ValidatePlan(&plan); err != nil {
				return err
			}

			client, _ := newClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), timeouts.MinuteExecute)
			defer cancel()

			result, err := client.ExecuteJSON(ctx, plan)
			if result.Raw != nil {
				fmt.Fprintln(cmd.OutOrStdout(), result.String())
			}
			return err
		},
	}
}
