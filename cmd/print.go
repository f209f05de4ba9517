package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wundergraph/graphql-directives/pkg/directiveprinter"
)

// printCmd represents the print command
var printCmd = &cobra.Command{
	Use:     "print [files...]",
	Short:   "print loads directive definitions and prints them as SDL to std out",
	Example: "graphql-directives print schema.graphql directives.yaml > directives.graphql",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, sync, err := newLogger(viper.GetString(logLevelKey))
		if err != nil {
			return err
		}
		defer sync()

		reg, err := loadRegistry(log, args, viper.GetString(inputFormatKey), false)
		if err != nil {
			return err
		}
		return directiveprinter.Print(reg.All(), viper.GetBool(printSpecifiedKey), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(printCmd)

	printCmd.Flags().Bool("specified", false, "also print the specified directives")
	_ = viper.BindPFlag(printSpecifiedKey, printCmd.Flags().Lookup("specified"))
}
