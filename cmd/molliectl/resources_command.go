package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"molliectl/internal/mollie"
	"molliectl/internal/render"
)

func newResourcesCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "resources",
		Short: "Show the supported resource types and their capabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := cctx.formatMode()
			if err != nil {
				return err
			}

			descriptors := mollie.SupportedResources()
			switch mode {
			case render.FormatJSON:
				type jsonResource struct {
					Name         string `json:"name"`
					IDPrefix     string `json:"id_prefix"`
					SupportsGet  bool   `json:"supports_get"`
					SupportsList bool   `json:"supports_list"`
				}
				resources := make([]jsonResource, 0, len(descriptors))
				for _, desc := range descriptors {
					resources = append(resources, jsonResource{
						Name:         desc.Name,
						IDPrefix:     desc.IDPrefix,
						SupportsGet:  desc.SupportsGet,
						SupportsList: desc.SupportsList,
					})
				}
				return writeJSON(cmd, resources)
			default:
				rows := make([][]string, 0, len(descriptors))
				for _, desc := range descriptors {
					rows = append(rows, []string{
						desc.Name,
						desc.IDPrefix,
						yesNo(desc.SupportsGet),
						yesNo(desc.SupportsList),
					})
				}
				grid := render.Grid([]string{"Resource", "ID prefix", "Get", "List"}, rows)
				fmt.Fprintln(cmd.OutOrStdout(), grid)
				return nil
			}
		},
	}
}
