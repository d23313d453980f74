package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/newsletter/pkg/compat"
	"github.com/dmitrymomot/newsletter/pkg/content"
	"github.com/dmitrymomot/newsletter/pkg/emailhtml"
	"github.com/dmitrymomot/newsletter/pkg/export"
)

var (
	// ErrLintFailed is returned by lint when the report has errors, or
	// warnings in strict mode.
	ErrLintFailed = errors.New("newsletter: compatibility check failed")

	ErrUnknownTemplate = errors.New("newsletter: unknown template")
	ErrUnknownScheme   = errors.New("newsletter: unknown color scheme")
)

func newNewCmd() *cobra.Command {
	var template, scheme, out string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Write a new project file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := content.Template(template)
			if !slices.Contains(content.Templates, t) {
				return fmt.Errorf("%w: %s", ErrUnknownTemplate, template)
			}
			n := content.ApplyTemplate(content.Default(), t)
			if scheme != "" {
				if !slices.ContainsFunc(content.ColorSchemes, func(s content.ColorScheme) bool { return s.Name == scheme }) {
					return fmt.Errorf("%w: %s", ErrUnknownScheme, scheme)
				}
				n = content.ApplyColorScheme(n, scheme)
			}
			data, err := export.ProjectJSON(n)
			if err != nil {
				return err
			}
			if out == "" {
				out = export.FileName(n.IssueNumber, export.KindProject)
			}
			return writeOutput(cmd, out, data)
		},
	}
	cmd.Flags().StringVarP(&template, "template", "t", string(content.TemplateDefault), "starter layout: default, minimal, event or empty")
	cmd.Flags().StringVarP(&scheme, "scheme", "s", "", "color scheme name")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file, - for stdout")
	return cmd
}

func newRenderCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "render [project.json]",
		Short: "Render a project to email HTML",
		Long:  "Render a project file, or the default newsletter when none is given, to a complete HTML document.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := readProject(cmd, args)
			if err != nil {
				return err
			}
			return writeOutput(cmd, out, []byte(emailhtml.Render(n)))
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "-", "output file, - for stdout")
	return cmd
}

func newLintCmd() *cobra.Command {
	var (
		strict bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "lint [project.json]",
		Short: "Check a project for email client problems",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := readProject(cmd, args)
			if err != nil {
				return err
			}
			report := compat.Summarize(compat.Check(n))

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				for _, issue := range report.Issues {
					fmt.Fprintf(w, "%-7s  %s\n", issue.Severity, issue.Message)
				}
			}

			if report.Errors > 0 || (strict && report.Warnings > 0) {
				return fmt.Errorf("%w: %d errors, %d warnings", ErrLintFailed, report.Errors, report.Warnings)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on warnings too")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}

func newExportCmd() *cobra.Command {
	var out, from, to string

	cmd := &cobra.Command{
		Use:       "export {html|eml|draft|mht|json} [project.json]",
		Short:     "Export a project as a file for Outlook or a browser",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{"html", "eml", "draft", "mht", "json"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := export.Kind(args[0])
			n, err := readProject(cmd, args[1:])
			if err != nil {
				return err
			}

			data, err := export.Build(n, emailhtml.Render(n), kind, export.WithFrom(from), export.WithTo(to))
			if err != nil {
				return err
			}

			if out == "" {
				out = export.FileName(n.IssueNumber, kind)
			}
			return writeOutput(cmd, out, data)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file, - for stdout (default: derived from the issue title)")
	cmd.Flags().StringVar(&from, "from", export.DefaultFrom, "From address of EML files")
	cmd.Flags().StringVar(&to, "to", export.DefaultTo, "To address of EML files")
	return cmd
}

// readProject loads the project named by args[0], reading stdin for "-".
// Without arguments it returns the default newsletter.
func readProject(cmd *cobra.Command, args []string) (content.Newsletter, error) {
	if len(args) == 0 {
		return content.Default(), nil
	}

	var (
		data []byte
		err  error
	)
	if args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return content.Newsletter{}, fmt.Errorf("read project: %w", err)
	}

	n, err := content.Import(data)
	if err != nil {
		return content.Newsletter{}, fmt.Errorf("read project %s: %w", args[0], err)
	}
	return n, nil
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s (%s)\n", path, humanSize(len(data)))
	return nil
}

func humanSize(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	}
	return fmt.Sprintf("%d B", n)
}
