package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient(opts)
			if err != nil {
				return err
			}

			tasks, err := result(client.ListAllTasks(cmd.Context()))
			if err != nil {
				return err
			}

			printTaskList(cmd.OutOrStdout(), tasks, opts.jsonOutput)
			return nil
		},
	}
}

func newGetCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient(opts)
			if err != nil {
				return err
			}

			task, err := result(client.GetTaskByID(cmd.Context(), args[0]))
			if err != nil {
				return err
			}

			printTask(cmd.OutOrStdout(), task, opts.jsonOutput)
			return nil
		},
	}
}

func newUpdateCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a task",
		Long: `Fetch the task, apply the given flags and send the full task back.
Fields without a flag keep their current value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("title") && !flags.Changed("user-id") && !flags.Changed("finished") {
				return errors.New("nothing to update: set --title, --user-id or --finished")
			}

			client, err := getClient(opts)
			if err != nil {
				return err
			}

			task, err := result(client.GetTaskByID(cmd.Context(), args[0]))
			if err != nil {
				return err
			}

			if flags.Changed("title") {
				task.Title, _ = flags.GetString("title")
			}
			if flags.Changed("user-id") {
				task.UserID, _ = flags.GetString("user-id")
			}
			if flags.Changed("finished") {
				task.IsFinished, _ = flags.GetBool("finished")
			}

			updated, err := result(client.UpdateTaskByID(cmd.Context(), task))
			if err != nil {
				return err
			}

			printTask(cmd.OutOrStdout(), updated, opts.jsonOutput)
			return nil
		},
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("user-id", "", "New owner user id")
	cmd.Flags().Bool("finished", false, "Mark the task finished (--finished=false to reopen)")

	return cmd
}
