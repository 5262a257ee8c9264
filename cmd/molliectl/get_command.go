package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"molliectl/internal/render"
	"molliectl/internal/resolve"
)

func newGetCommand(cctx *commandContext) *cobra.Command {
	var hint string

	cmd := &cobra.Command{
		Use:   "get <resource-id>",
		Short: "Retrieve a single item by resource ID",
		Long: "Retrieve a single item by resource ID. The resource type is " +
			"inferred from the ID prefix (tr_, cst_, ord_, ...) unless a " +
			"hint is given with --hint-resource.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resourceID := args[0]

			mode, err := cctx.formatMode()
			if err != nil {
				return err
			}
			client, err := cctx.newClient(cmd.Context())
			if err != nil {
				return err
			}

			descriptors := client.Descriptors()
			var resourceName string
			if hint != "" {
				resourceName, err = resolve.ByHint(hint, descriptors)
			} else {
				resourceName, err = resolve.ByID(resourceID, descriptors)
			}
			if err != nil {
				return err
			}

			record, err := client.Get(cmd.Context(), resourceName, resourceID)
			if err != nil {
				return err
			}

			out, err := render.RenderItem(record, mode)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&hint, "hint-resource", "r", "", "Give a hint on the resource type")
	return cmd
}
