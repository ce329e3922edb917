package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/vpcfinder/internal/aws"
	"github.com/vietdv277/vpcfinder/internal/ui"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the AWS identity behind a profile",
	Long: `Resolve the account, ARN and user ID for the active profile.

Examples:
  vpcfinder whoami
  vpcfinder whoami -p prod`,
	Args: cobra.NoArgs,
	RunE: runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	name := activeProfile()

	client, err := aws.NewClient(cmd.Context(), aws.WithProfile(name))
	if err != nil {
		return fmt.Errorf("failed to create AWS client: %w", err)
	}

	identity, err := aws.NewIdentityService(client).GetCallerIdentity(cmd.Context())
	if err != nil {
		return err
	}

	if name == "" {
		name = "(default chain)"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Profile:  %s\n", ui.NameStyle.Render(name))
	fmt.Fprintf(out, "Account:  %s\n", identity.Account)
	fmt.Fprintf(out, "User:     %s\n", identity.UserID)
	if identity.Arn != "" {
		fmt.Fprintf(out, "ARN:      %s\n", ui.MutedStyle.Render(identity.Arn))
	}
	return nil
}
