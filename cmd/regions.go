package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List the regions a report would scan",
	Long: `List the AWS regions enabled for the active profile, in the order
a report walks them.

Examples:
  vpcfinder regions -p prod`,
	Args: cobra.NoArgs,
	RunE: runRegions,
}

func init() {
	rootCmd.AddCommand(regionsCmd)
}

func runRegions(cmd *cobra.Command, args []string) error {
	net, err := newProvider(cmd.Context(), activeProfile())
	if err != nil {
		return fmt.Errorf("failed to create AWS client: %w", err)
	}

	regions, err := net.ListRegions(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, r := range regions {
		fmt.Fprintln(out, r)
	}
	fmt.Fprintf(out, "  %d regions\n", len(regions))
	return nil
}
