/*
Copyright © 2025 Stackscout Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/stackscout/stackscout/internal/aws"
	"github.com/stackscout/stackscout/internal/collect"
	"github.com/stackscout/stackscout/internal/config"
	"github.com/stackscout/stackscout/internal/report"
	"github.com/stackscout/stackscout/internal/run"
	"github.com/stackscout/stackscout/internal/version"
)

var (
	// runner can be injected for testing
	runner run.Runner
)

// rootCmd represents the base command; invoked without a subcommand it
// performs the collection run itself
var rootCmd = newRootCmd()

// newRootCmd builds the root command. Tests construct fresh instances to
// avoid flag state leaking between executions.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stackscout",
		Short: "Collect CloudFormation stack outputs across AWS accounts",
		Long: `Stackscout queries every configured AWS profile for CloudFormation stacks
whose name starts with a target prefix and aggregates their declared outputs
into a single JSON report.

For each profile the first matching stack is inspected and its outputs are
recorded under that profile. A failing account never aborts the run: the
failure is captured in the report, counted in the summary, and reflected in
the process exit code so pipelines can detect it.

Examples:
  stackscout --target proj --profiles dev,staging,prod
  stackscout --target proj --region us-east-1 --clean`,
		RunE: runCollection,
	}

	cmd.Flags().String("target", "", "prefix of the stack names that should be targeted")
	cmd.Flags().String("region", "eu-west-1", "AWS region to inspect stacks in")
	cmd.Flags().StringSlice("profiles", []string{"default"}, "AWS profile names to iterate through")
	cmd.Flags().Bool("clean", false, "remove any existing report data before gathering")
	cmd.Flags().String("report-dir", "account-data", "directory the report is written beneath")
	cmd.PersistentFlags().StringP("config", "c", "stackscout.yaml", "configuration file with default settings")

	cmd.Version = version.Short()
	cmd.SetVersionTemplate(version.Info() + "\n")

	return cmd
}

// runCollection merges flag and config-file settings, executes the run, and
// maps any captured failures onto a nonzero exit
func runCollection(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	defaults, err := config.Load(configFile)
	if err != nil {
		return err
	}

	target, _ := cmd.Flags().GetString("target")
	region, _ := cmd.Flags().GetString("region")
	profileNames, _ := cmd.Flags().GetStringSlice("profiles")
	clean, _ := cmd.Flags().GetBool("clean")
	reportDir, _ := cmd.Flags().GetString("report-dir")

	// File values fill in whatever the command line left at its default
	if target == "" {
		target = defaults.Target
	}
	if !cmd.Flags().Changed("region") && defaults.Region != "" {
		region = defaults.Region
	}
	if !cmd.Flags().Changed("profiles") && len(defaults.Profiles) > 0 {
		profileNames = defaults.Profiles
	}
	if !cmd.Flags().Changed("report-dir") && defaults.ReportDir != "" {
		reportDir = defaults.ReportDir
	}

	if target == "" {
		_ = cmd.Usage()
		return fmt.Errorf("required flag \"target\" not set")
	}

	outcome, err := getRunner(cmd.OutOrStdout(), reportDir).Run(cmd.Context(), run.Input{
		Profiles: profileNames,
		Region:   region,
		Target:   target,
		Clean:    clean,
	})
	if err != nil {
		return err
	}

	if failed := len(outcome.Failures()); failed > 0 {
		return fmt.Errorf("%d of %d profiles failed", failed, len(outcome))
	}
	return nil
}

// Root returns the root command for execution by main
func Root() *cobra.Command {
	return rootCmd
}

// getRunner returns the runner instance, creating a default one if none is set
func getRunner(out io.Writer, reportDir string) run.Runner {
	if runner != nil {
		return runner
	}

	factory := aws.NewClientFactory(out)
	collector := collect.NewStackCollector(factory)
	writer := report.NewWriter(reportDir)
	styles := report.NewStyles(report.ShouldUseColour())

	return run.NewStackRunner(collector, writer, out, styles)
}

// SetRunner allows injection of a runner (for testing)
func SetRunner(r run.Runner) {
	runner = r
}
