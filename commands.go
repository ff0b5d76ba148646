package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blogem/opsledger/config"
	"github.com/blogem/opsledger/database"
	"github.com/blogem/opsledger/logging"
	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/userctx"
)

var (
	orgID        int
	tierCategory string
	tierAmount   float64
	oshaYear     int
	oshaOut      string
	orgName      string
	orgSlug      string
	orgOwner     string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE:  runMigrate,
}

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Manage approval tiers",
}

var tiersImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace approval tiers from a YAML file",
	Long: `Reads a YAML document with a top-level "tiers" list. Every category
present in the file has its tiers replaced in one transaction within the
organization given by --org; other categories are left alone.`,
	Args: cobra.ExactArgs(1),
	RunE: runTiersImport,
}

var tiersMatchCmd = &cobra.Command{
	Use:   "match",
	Short: "Show which approval tier applies to a category and amount",
	RunE:  runTiersMatch,
}

var oshaCmd = &cobra.Command{
	Use:   "osha",
	Short: "OSHA injury and illness log",
}

var oshaExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the OSHA 300 log and 300A summary for a year as XLSX",
	RunE:  runOSHAExport,
}

var orgsCmd = &cobra.Command{
	Use:   "orgs",
	Short: "Manage organizations",
}

var orgsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an organization with an initial owner",
	RunE:  runOrgsCreate,
}

func init() {
	for _, c := range []*cobra.Command{tiersImportCmd, tiersMatchCmd, oshaExportCmd} {
		c.Flags().IntVar(&orgID, "org", 0, "Organization ID")
		_ = c.MarkFlagRequired("org")
	}

	tiersMatchCmd.Flags().StringVar(&tierCategory, "category", "", "Expense category")
	tiersMatchCmd.Flags().Float64Var(&tierAmount, "amount", 0, "Amount to approve")
	_ = tiersMatchCmd.MarkFlagRequired("amount")

	oshaExportCmd.Flags().IntVar(&oshaYear, "year", 0, "Calendar year (default: current year)")
	oshaExportCmd.Flags().StringVarP(&oshaOut, "out", "o", "", "Output file (default: osha-300-<year>.xlsx)")

	orgsCreateCmd.Flags().StringVar(&orgName, "name", "", "Organization name")
	orgsCreateCmd.Flags().StringVar(&orgSlug, "slug", "", "URL-safe identifier")
	orgsCreateCmd.Flags().StringVar(&orgOwner, "owner", "", "Email of the initial owner")
	for _, name := range []string{"name", "slug", "owner"} {
		_ = orgsCreateCmd.MarkFlagRequired(name)
	}

	tiersCmd.AddCommand(tiersImportCmd, tiersMatchCmd)
	oshaCmd.AddCommand(oshaExportCmd)
	orgsCmd.AddCommand(orgsCreateCmd)
	rootCmd.AddCommand(migrateCmd, tiersCmd, oshaCmd, orgsCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	applied, err := database.ApplyMigrations(db)
	for _, version := range applied {
		logger.Info("applied migration", zap.String("version", version))
	}
	if err != nil {
		return err
	}
	if len(applied) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Database is up to date")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s)\n", len(applied))
	return nil
}

func runTiersImport(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer f.Close()

	counts, err := a.srvs.ApprovalTier.ImportTiers(operatorContext(cmd.Context(), orgID), f)
	if err != nil {
		return describe(err)
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", k, counts[k])
	}
	return nil
}

func runTiersMatch(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	match, err := a.srvs.ApprovalTier.MatchTier(operatorContext(cmd.Context(), orgID), tierCategory, tierAmount)
	if err != nil {
		return describe(err)
	}
	return printJSON(cmd, match)
}

func runOSHAExport(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	year := oshaYear
	if year == 0 {
		year = time.Now().Year()
	}
	out := oshaOut
	if out == "" {
		out = fmt.Sprintf("osha-300-%d.xlsx", year)
	}

	// buffer so a failed export leaves no partial file behind
	var buf bytes.Buffer
	if err := a.srvs.OSHA.Export(operatorContext(cmd.Context(), orgID), year, &buf); err != nil {
		return describe(err)
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	abs, _ := filepath.Abs(out)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", abs)
	return nil
}

func runOrgsCreate(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := userctx.SetUserEmail(cmd.Context(), orgOwner)
	org, err := a.srvs.Organization.Create(ctx, &models.OrganizationForm{Name: orgName, Slug: orgSlug}, orgOwner)
	if err != nil {
		return describe(err)
	}
	return printJSON(cmd, org)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// describe flattens validation errors onto one line each for the terminal
func describe(err error) error {
	var verrs models.ValidationErrors
	if errors.As(err, &verrs) {
		return fmt.Errorf("validation failed:\n  %s", strings.Join(verrs.GetMessages(), "\n  "))
	}
	return err
}
