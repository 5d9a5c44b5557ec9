package cmd

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/kerbaras/perusahaan/pkg/app/components"
	"github.com/spf13/cobra"
)

func newDeleteCmd(env *environment) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <entity> <id>",
		Short: "Delete a record",
		Long:  "Delete a record after confirmation. Records referring to it are left as they are.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := lookupEntity(env.controllers, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if !yes {
				color.New(color.FgYellow).Fprintf(out, "%s [y/N] ", components.DeletePrompt)
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "ya" {
					fmt.Fprintln(out, "Dibatalkan")
					return nil
				}
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), env.cfg.Remote.Timeout)
			defer cancel()
			if err := e.Delete(ctx, args[1]); err != nil {
				return fmt.Errorf("gagal menghapus data: %w", err)
			}
			color.New(color.FgGreen).Fprintf(out, "✅ %s %s dihapus\n", e.Name(), args[1])
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
