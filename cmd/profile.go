package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vietdv277/vpcfinder/internal/aws"
	"github.com/vietdv277/vpcfinder/internal/config"
	"github.com/vietdv277/vpcfinder/internal/ui"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage AWS profiles",
	Long: `Manage the AWS profile used by whoami and regions.

When run without subcommands, shows an interactive selector to choose a profile.
The report itself always takes its profile from --profile.

Examples:
  vpcfinder profile                    # Interactive profile selector
  vpcfinder profile ls                 # List all available profiles
  vpcfinder profile set my-profile     # Set a specific profile`,
	RunE: runProfileInteractive,
}

var profileLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available AWS profiles",
	Long: `List all available AWS profiles from ~/.aws/credentials and ~/.aws/config.

Examples:
  vpcfinder profile ls`,
	RunE: runProfileList,
}

var profileSetCmd = &cobra.Command{
	Use:   "set <profile-name>",
	Short: "Save the default AWS profile",
	Long: `Save an AWS profile as the default for whoami and regions.

The profile is saved to ~/.vpcfinder/config.yaml.

Examples:
  vpcfinder profile set production`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileSet,
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileLsCmd)
	profileCmd.AddCommand(profileSetCmd)
}

func runProfileInteractive(cmd *cobra.Command, args []string) error {
	profiles, err := aws.ListProfiles()
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(profiles) == 0 {
		fmt.Fprintln(out, "No AWS profiles found")
		fmt.Fprintln(out, "Create profiles in ~/.aws/credentials or ~/.aws/config")
		return nil
	}

	selected, err := ui.SelectProfile(profiles, activeProfile())
	if err != nil {
		return err
	}

	return saveProfile(cmd, selected.Name)
}

func runProfileList(cmd *cobra.Command, args []string) error {
	profiles, err := aws.ListProfiles()
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(profiles) == 0 {
		fmt.Fprintln(out, "No AWS profiles found")
		fmt.Fprintln(out, "Create profiles in ~/.aws/credentials or ~/.aws/config")
		return nil
	}

	ui.PrintProfileTable(out, profiles, activeProfile())
	return nil
}

func runProfileSet(cmd *cobra.Command, args []string) error {
	name := args[0]
	if !aws.ValidateProfile(name) {
		return fmt.Errorf("profile %q not found", name)
	}
	return saveProfile(cmd, name)
}

func saveProfile(cmd *cobra.Command, name string) error {
	if err := config.SetProfile(name); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Profile set to: %s\n", name)
	fmt.Fprintf(out, "Saved to: %s\n", config.GetConfigPath())
	return nil
}

// activeProfile resolves the profile for commands other than the report.
// Priority: --profile flag or VPCFINDER_PROFILE > config file > AWS_PROFILE
func activeProfile() string {
	if p := viper.GetString("profile"); p != "" {
		return p
	}
	if saved := config.GetSavedProfile(); saved != "" {
		return saved
	}
	return os.Getenv("AWS_PROFILE")
}
