package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sitelang/internal/domain/entities"
)

var checkStrict bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report page-mapping entries without a matching counterpart",
	Long: `check lists mapping entries whose counterpart in the other table is
missing or points to a different page, and navigation pages absent from the
primary table. Such pages fall back to the home page when switching language.
Nothing is repaired.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "exit with an error when issues are found")
}

func runCheck(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.close()

	site := a.resolver.Site()
	issues := a.catalog.Check()
	out := cmd.OutOrStdout()
	for _, is := range issues {
		fmt.Fprintln(out, describeIssue(site, is))
	}
	logger.Info("🔎 Table de correspondance vérifiée",
		zap.Int("entries", a.catalog.Current().Mapping.Len()),
		zap.Int("issues", len(issues)),
	)

	if checkStrict && len(issues) > 0 {
		return fmt.Errorf("%d mapping issue(s)", len(issues))
	}
	if len(issues) == 0 {
		fmt.Fprintln(out, "ok")
	}
	return nil
}

func describeIssue(site entities.Site, is entities.ConsistencyIssue) string {
	from, to := site.Code(is.Language), site.Code(is.Language.Other())
	switch is.Kind {
	case entities.IssueMissingReverse:
		return fmt.Sprintf("%s: %s:%s -> %s:%s has no %s entry back", is.Kind, from, is.Slug, to, is.Target, to)
	case entities.IssueMismatch:
		return fmt.Sprintf("%s: %s:%s -> %s:%s but %s:%s -> %s:%s", is.Kind, from, is.Slug, to, is.Target, to, is.Target, from, is.Actual)
	default:
		return fmt.Sprintf("%s: navigation page %s:%s is not in the %s table", is.Kind, from, is.Slug, from)
	}
}
