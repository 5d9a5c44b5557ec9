package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newListCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "list <entity>",
		Short: "List every record of an entity",
		Long:  "Display all records of manajer, jenis, pemilik or properti in a formatted table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := lookupEntity(env.controllers, args[0])
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), env.cfg.Remote.Timeout)
			defer cancel()

			rows, err := e.Rows(ctx, "")
			if err != nil {
				return fmt.Errorf("gagal memuat data: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintf(out, "Tidak ada data %s\n", e.Name())
				return nil
			}

			labels := e.Labels()
			columns := make([]table.Column, len(labels))
			for i, label := range labels {
				width := len(label)
				for _, row := range rows {
					width = max(width, len(row[i]))
				}
				columns[i] = table.Column{Title: label, Width: min(width, 30)}
			}

			tableRows := make([]table.Row, len(rows))
			for i, row := range rows {
				cells := make(table.Row, len(row))
				for j, cell := range row {
					cells[j] = truncateString(cell, 30)
				}
				tableRows[i] = cells
			}

			t := table.New(
				table.WithColumns(columns),
				table.WithRows(tableRows),
				table.WithFocused(false),
				table.WithHeight(len(tableRows)+1),
			)

			s := table.DefaultStyles()
			s.Header = s.Header.
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240")).
				BorderBottom(true).
				Bold(true)
			s.Selected = s.Cell
			t.SetStyles(s)

			fmt.Fprintf(out, "\nData %s (%d)\n\n", e.Name(), len(rows))
			fmt.Fprintln(out, t.View())
			return nil
		},
	}
}

func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-1]) + "…"
}
