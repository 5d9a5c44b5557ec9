package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/kerbaras/perusahaan/pkg/data"
	"github.com/spf13/cobra"
)

func newGetCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "get <entity> <id>",
		Short: "Show one record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := lookupEntity(env.controllers, args[0])
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), env.cfg.Remote.Timeout)
			defer cancel()

			fields, err := e.Detail(ctx, args[1])
			if errors.Is(err, data.ErrNotFound) {
				return fmt.Errorf("%s %s tidak ditemukan", e.Name(), args[1])
			}
			if err != nil {
				return fmt.Errorf("error loading data: %w", err)
			}

			bold := color.New(color.Bold)
			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.MaxColWidth = 60
			tbl.Wrap = true
			for _, f := range fields {
				value := f[1]
				if value == "" {
					value = "-"
				}
				tbl.AddRow(bold.Sprint(f[0]), value)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tbl)
			return nil
		},
	}
}
