package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/todoapi/todoapi/pkg/todoapi"
)

// printTask prints a single task to the writer
func printTask(w io.Writer, task todoapi.Task, jsonOutput bool) {
	if jsonOutput {
		printJSON(w, task)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", task.ID)
	fmt.Fprintf(tw, "User:\t%s\n", task.UserID)
	fmt.Fprintf(tw, "Title:\t%s\n", task.Title)
	fmt.Fprintf(tw, "Done:\t%s\n", doneString(task.IsFinished))
	tw.Flush()
}

// printTaskList prints tasks as a table
func printTaskList(w io.Writer, tasks []todoapi.Task, jsonOutput bool) {
	if jsonOutput {
		printJSON(w, tasks)
		return
	}

	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tUSER\tTITLE\tDONE\n")
	fmt.Fprintf(tw, "--\t----\t-----\t----\n")
	for _, task := range tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			task.ID, task.UserID, truncate(task.Title, 40), doneString(task.IsFinished))
	}
	tw.Flush()
}

// printError prints an error message
func printError(w io.Writer, err error, jsonOutput bool) {
	if jsonOutput {
		printJSON(w, map[string]interface{}{
			"error": map[string]interface{}{
				"message": err.Error(),
			},
		})
		return
	}

	fmt.Fprintf(w, "Error: %s\n", err.Error())
}

func printJSON(w io.Writer, v interface{}) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}

func doneString(finished bool) string {
	if finished {
		return "yes"
	}
	return "no"
}

// truncate shortens s to at most max runes, marking the cut with "...".
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
