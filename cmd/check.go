package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wundergraph/graphql-directives/pkg/operationreport"
)

const checkStrictKey = "check.strict"

var errCheckFailed = errors.New("check failed")

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:     "check [files...]",
	Short:   "check validates directive definitions and reports every error found",
	Example: "graphql-directives check schema.graphql",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, sync, err := newLogger(viper.GetString(logLevelKey))
		if err != nil {
			return err
		}
		defer sync()

		out := cmd.OutOrStdout()
		reg, err := loadRegistry(log, args, viper.GetString(inputFormatKey), viper.GetBool(checkStrictKey))
		if err != nil {
			writeCheckErrors(out, err)
			return errCheckFailed
		}

		custom := reg.Custom()
		names := make([]string, len(custom))
		for i := range custom {
			names[i] = custom[i].String()
		}
		_, err = fmt.Fprintf(out, "ok: %d custom directives", len(custom))
		if err == nil && len(names) > 0 {
			_, err = fmt.Fprintf(out, " (%s)", strings.Join(names, ", "))
		}
		if err == nil {
			_, err = fmt.Fprintln(out)
		}
		return err
	},
}

func writeCheckErrors(out io.Writer, err error) {
	prefix := ""
	var fileErr *fileError
	if errors.As(err, &fileErr) {
		prefix = fileErr.path + ": "
	}

	message, ok := operationreport.ExternalErrorMessage(err, func(report *operationreport.Report) string {
		messages := report.Messages()
		for i := range messages {
			messages[i] = prefix + messages[i]
		}
		return strings.Join(messages, "\n")
	})
	if !ok {
		message = err.Error()
	}
	_, _ = fmt.Fprintln(out, message)
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().Bool("strict", false, "reject custom definitions that reuse a specified directive name")
	_ = viper.BindPFlag(checkStrictKey, checkCmd.Flags().Lookup("strict"))
}
