package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"molliectl/internal/render"
	"molliectl/internal/resolve"
)

func newListCommand(cctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list <resource>",
		Short: "List items by resource name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := cctx.formatMode()
			if err != nil {
				return err
			}
			client, err := cctx.newClient(cmd.Context())
			if err != nil {
				return err
			}

			// Partial names resolve like get hints, so `list pay` works.
			resourceName, err := resolve.ByHint(args[0], client.Descriptors())
			if err != nil {
				return err
			}

			records, err := client.List(cmd.Context(), resourceName, limit)
			if err != nil {
				return err
			}

			out, err := render.RenderList(records, resourceName, mode)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "Limit the number of results")
	return cmd
}
