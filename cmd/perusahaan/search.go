package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newSearchCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "search <entity> <query>",
		Short: "Search records by name",
		Long:  "Find records whose name contains the query, ignoring case",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := lookupEntity(env.controllers, args[0])
			if err != nil {
				return err
			}
			query := strings.Join(args[1:], " ")

			ctx, cancel := context.WithTimeout(cmd.Context(), env.cfg.Remote.Timeout)
			defer cancel()
			rows, err := e.Rows(ctx, query)
			if err != nil {
				return fmt.Errorf("gagal memuat data: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintf(out, "Tidak ada %s yang cocok dengan %q\n", e.Name(), query)
				return nil
			}

			var (
				purple = lipgloss.Color("99")

				headerStyle = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
				cellStyle   = lipgloss.NewStyle().Padding(0, 1)
			)

			t := table.New().
				Border(lipgloss.HiddenBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(purple)).
				StyleFunc(func(row, col int) lipgloss.Style {
					switch {
					case row == table.HeaderRow:
						return headerStyle
					default:
						return cellStyle
					}
				}).
				Headers(append([]string{"#"}, e.Labels()[:2]...)...)

			for i, row := range rows {
				t.Row(fmt.Sprintf("%d", i+1), row[0], truncateString(row[1], 58))
			}

			fmt.Fprintln(out, t)
			return nil
		},
	}
}
