package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newAddCmd(env *environment) *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:     "add <entity> --set field=value ...",
		Short:   "Create a record",
		Long:    "Create a record. Fields are set by column name, e.g. --set nama_manajer=Andi. A blank id is generated.",
		Example: "  perusahaan add manajer --set nama_manajer=Andi --set kontak_manajer=0812",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := lookupEntity(env.controllers, args[0])
			if err != nil {
				return err
			}
			values, err := parseSets(sets)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), env.cfg.Remote.Timeout)
			defer cancel()

			id, err := e.Add(ctx, values)
			if err != nil {
				return fmt.Errorf("gagal menyimpan data: %w", err)
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✅ %s %s disimpan\n", e.Name(), id)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "field=value, repeatable")
	return cmd
}

func newUpdateCmd(env *environment) *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:     "update <entity> <id> --set field=value ...",
		Short:   "Update a record",
		Long:    "Update a record. Unset fields keep their current value; the id cannot change.",
		Example: "  perusahaan update properti P1 --set status_properti=Disewa",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := lookupEntity(env.controllers, args[0])
			if err != nil {
				return err
			}
			values, err := parseSets(sets)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), env.cfg.Remote.Timeout)
			defer cancel()

			if err := e.Update(ctx, args[1], values); err != nil {
				return fmt.Errorf("gagal menyimpan data: %w", err)
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✅ %s %s diperbarui\n", e.Name(), args[1])
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "field=value, repeatable")
	return cmd
}
