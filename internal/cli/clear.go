package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var clearForce bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every task",
	Long:  "Removes every task from the data file. This action cannot be undone.",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&clearForce, "force", "f", false, "Skip confirmation prompt")
}

func runClear(cmd *cobra.Command, args []string) error {
	return withWorkspace(func(ws *workspace) error {
		out := cmd.OutOrStdout()
		count := ws.tree.Len()
		if count == 0 {
			fmt.Fprintln(out, "No tasks to clear.")
			return nil
		}

		if !clearForce {
			fmt.Fprintf(out, "This will delete %d tasks. Continue? [y/N] ", count)

			reader := bufio.NewReader(cmd.InOrStdin())
			response, _ := reader.ReadString('\n')
			response = strings.TrimSpace(strings.ToLower(response))

			if response != "y" && response != "yes" {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
		}

		ws.tree.Clear()
		if err := ws.save(); err != nil {
			return err
		}
		ws.record(ws.journal.TreeCleared(count))

		fmt.Fprintf(out, "Cleared %d tasks.\n", count)
		return nil
	})
}
