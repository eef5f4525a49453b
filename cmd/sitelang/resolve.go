package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sitelang/internal/domain/entities"
)

var (
	resolveLang    string
	resolveExplain bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [path]...",
	Short: "Print the equivalent page of each path in the other language",
	Example: `  sitelang resolve /pages/fr/reseau-publicitaire.html
  sitelang resolve --lang en-CA /pages/carte.html
  sitelang resolve --explain /en/login`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveLang, "lang", "", "lang attribute of the page, if known")
	resolveCmd.Flags().BoolVar(&resolveExplain, "explain", false, "show detected language, slug and lookup stage")
}

func runResolve(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.close()

	site := a.resolver.Site()
	out := cmd.OutOrStdout()
	for _, p := range args {
		res := a.resolver.Resolve(entities.Location{Path: p, LangAttr: resolveLang})
		if !resolveExplain {
			fmt.Fprintln(out, res.Path)
			continue
		}
		fmt.Fprintf(out, "%s\t%s:%s -> %s:%s\t%s\t(%s)\n",
			p,
			site.Code(res.From.Language), res.From.Slug,
			site.Code(res.To.Language), res.To.Slug,
			res.Path, res.Stage,
		)
	}
	return nil
}
