package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

// SeedCmd loads initial site content from a YAML file
func SeedCmd(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("file")
	if err != nil {
		return fmt.Errorf("invalid file flag: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	doc, err := ParseSeedDocument(f)
	if err != nil {
		return err
	}

	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	report, err := NewSeeder(rt.services, rt.logger).Seed(cmd.Context(), doc)
	if err != nil {
		rt.logger.Error("Seeding failed", "file", path, "error", err)
		return err
	}

	names := make([]string, 0, len(report.Created))
	for name := range report.Created {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(cmd.OutOrStdout(), "%-12s %d created\n", name, report.Created[name])
	}
	for _, name := range report.Skipped {
		fmt.Fprintf(cmd.OutOrStdout(), "%-12s skipped (not empty)\n", name)
	}
	return nil
}

// InitSeedCommands registers the seed command.
func InitSeedCommands(rootCmd *cobra.Command) error {
	var seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Load banner, partners, team, services, social links and jobs from YAML",
		Args:  cobra.NoArgs,
		RunE:  SeedCmd,
	}
	seedCmd.Flags().StringP("file", "f", "content.yaml", "Path to the seed file")
	rootCmd.AddCommand(seedCmd)

	return nil
}
