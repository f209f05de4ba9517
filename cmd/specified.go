package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wundergraph/graphql-directives/pkg/directive"
	"github.com/wundergraph/graphql-directives/pkg/directiveprinter"
)

// specifiedCmd represents the specified command
var specifiedCmd = &cobra.Command{
	Use:   "specified",
	Short: "specified prints the directives every GraphQL schema declares",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		specified := directive.SpecifiedDirectives()
		definitions := make([]directive.Definition, len(specified))
		for i := range specified {
			definitions[i] = specified[i]
		}
		return directiveprinter.Print(definitions, true, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(specifiedCmd)
}
