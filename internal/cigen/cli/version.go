package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"cigen/pkg/version"
)

func NewVersionCmd() *cobra.Command {
	var jsonOutput bool

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			if jsonOutput {
				info := version.GetBuildInfo()
				data, _ := json.MarshalIndent(info, "", "  ")
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return
			}
			fmt.Fprint(cmd.OutOrStdout(), version.GetLongVersion())
		},
	}

	versionCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return versionCmd
}
