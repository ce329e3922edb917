package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vietdv277/vpcfinder/internal/aws"
	"github.com/vietdv277/vpcfinder/internal/config"
	"github.com/vietdv277/vpcfinder/internal/inventory"
	vlog "github.com/vietdv277/vpcfinder/internal/log"
	"github.com/vietdv277/vpcfinder/internal/report"
	"github.com/vietdv277/vpcfinder/internal/ui"
	"github.com/vietdv277/vpcfinder/pkg/provider"
)

// minArgs is the number of argv tokens, program name included, of a full
// report invocation: vpcfinder -p <profile> -f <filename>
const minArgs = 5

var (
	// Global flags
	profile  string
	filename string

	logger = vlog.New(os.Stderr, slog.LevelInfo)
)

// newProvider builds the network provider for a profile; replaced in tests
var newProvider = func(ctx context.Context, profile string) (provider.NetworkProvider, error) {
	return aws.NewClient(ctx, aws.WithProfile(profile))
}

var rootCmd = &cobra.Command{
	Use:   "vpcfinder -p <profile> -f <filename>",
	Short: "Inventory VPCs and subnets across every enabled AWS region",
	Long: `vpcfinder walks every AWS region enabled for a profile, lists each VPC and
its subnets, and writes a CSV inventory. Subnets with fewer than 30 available
private IPv4 addresses are highlighted.

Examples:
  vpcfinder -p default -f inventory          # writes inventory.csv
  vpcfinder --profile prod --filename prod   # writes prod.csv
  vpcfinder profile ls                       # List AWS profiles
  vpcfinder whoami -p prod                   # Show the identity behind a profile`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
	RunE:              runReport,
}

// Execute runs the root command.
func Execute() {
	if err := execute(context.Background(), os.Args); err != nil {
		logger.Error("unexpected error", "err", err)
		os.Exit(1)
	}
}

// execute dispatches argv. A report invocation with fewer than minArgs
// tokens prints help instead of running.
func execute(ctx context.Context, argv []string) error {
	args := argv[1:]
	rootCmd.SetArgs(args)

	if len(argv) < minArgs {
		if sub, _, err := rootCmd.Find(args); err != nil || sub == rootCmd {
			return rootCmd.Help()
		}
	}

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "AWS profile to use")
	rootCmd.Flags().StringVarP(&filename, "filename", "f", "", "Report file name without the .csv extension")

	_ = viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))

	rootCmd.InitDefaultHelpCmd()
}

func initConfig() {
	viper.SetConfigFile(config.GetConfigPath())
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("VPCFINDER")
	viper.AutomaticEnv()
	viper.SetDefault("log_level", "info")

	// A missing config file is fine
	_ = viper.ReadInConfig()
}

func setupLogger(cmd *cobra.Command, args []string) error {
	level, err := vlog.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		return err
	}
	logger = vlog.New(cmd.ErrOrStderr(), level)
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	if profile == "" {
		return errors.New("--profile is required")
	}
	if filename == "" {
		return errors.New("--filename is required")
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	net, err := newProvider(ctx, profile)
	if err != nil {
		return fmt.Errorf("failed to create AWS client: %w", err)
	}

	path := filename + report.Extension
	w, err := report.Create(path)
	if err != nil {
		return err
	}

	scanner := inventory.NewScanner(profile, net, ui.NewConsole(out), w, inventory.WithLogger(logger))
	summary, err := scanner.Run(ctx)
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	ui.PrintSummary(out, summary, path)
	return nil
}
