package main

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/calyx-ui/calyx/internal/config"
	"github.com/calyx-ui/calyx/internal/errors"
	"github.com/calyx-ui/calyx/pkg/render"
)

func renderCmd() *cobra.Command {
	var (
		out    string
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the HTML shell to the output directory",
		Long: `Render the project's HTML shell — the document the client mounts
into — to the configured output directory.

The shell carries the cloaked mount root, a stylesheet link for each
CSS file in the static directory, and the page title from calyx.toml.
The deploy command publishes the output directory.

Examples:
  calyx render
  calyx render --out build
  calyx render --stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(out, stdout)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output directory (default from calyx.toml)")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "Write the shell to stdout instead of a file")

	return cmd
}

func runRender(out string, stdout bool) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	cfg, err := config.Load(wd)
	if err != nil {
		return err
	}
	if out != "" {
		cfg.Build.Output = out
	}

	page := render.Page{
		Title:       cfg.Name,
		Cloaked:     true,
		StyleSheets: shellStyleSheets(cfg),
	}

	var buf bytes.Buffer
	r := render.New(render.Config{Pretty: cfg.Build.Pretty})
	if err := r.RenderPage(&buf, page); err != nil {
		return errors.New("C081").Wrap(err)
	}

	if stdout {
		_, err = os.Stdout.Write(buf.Bytes())
		return err
	}

	outDir := filepath.Join(wd, cfg.Build.Output)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return errors.New("C081").Wrap(err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "index.html"), buf.Bytes(), 0644); err != nil {
		return errors.New("C081").Wrap(err)
	}

	success("rendered shell to %s", filepath.Join(cfg.Build.Output, "index.html"))
	return nil
}

// shellStyleSheets lists the project's stylesheets under the static dir,
// addressed through the static URL prefix.
func shellStyleSheets(cfg *config.Config) []string {
	entries, err := os.ReadDir(filepath.Join(cfg.Dir(), cfg.Static.Dir))
	if err != nil {
		return nil
	}
	var hrefs []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".css" {
			hrefs = append(hrefs, cfg.Static.Prefix+e.Name())
		}
	}
	return hrefs
}
