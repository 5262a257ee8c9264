package main

import (
	"strings"

	"github.com/spf13/cobra"

	"molliectl/internal/render"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var formatFlag string
	var testmodeFlag bool

	ctx := newCommandContext(&configFlag, &formatFlag, &testmodeFlag)

	rootCmd := &cobra.Command{
		Use:           "molliectl",
		Short:         "Command-line client for the Mollie payments API",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "",
		"Output format: "+strings.Join(render.AllFormats(), ", "))
	rootCmd.PersistentFlags().BoolVarP(&testmodeFlag, "testmode", "t", false,
		"Enable testmode when using an access token or OAuth")

	rootCmd.AddCommand(newGetCommand(ctx))
	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newResourcesCommand(ctx))
	rootCmd.AddCommand(newAuthCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
