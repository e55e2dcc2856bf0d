package main

import (
	"fmt"
	"io"
	"strings"

	"stopwords/internal/core/stopwords"
	"stopwords/internal/core/version"
	"stopwords/internal/services/api/stopwords/domain"

	"github.com/spf13/cobra"
)

func (a *app) getCommand() *cobra.Command {
	var (
		srcs []string
		raw  bool
	)
	cmd := &cobra.Command{
		Use:   "get [language]",
		Short: "Print the stopwords of a language",
		Long: `Print the stopwords of a language, one per line.

The language is an ISO 639-1 code or a language name such as "German".
It defaults to "en" and the source defaults to "snowball".`,
		Example: `  stopwords get German
  stopwords get el --source stopwords-iso
  stopwords get en --source marimo --raw`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return a.fail(err)
			}
			simplify := !raw
			resp, err := svc.Lookup(cmd.Context(), domain.LookupQuery{
				Language: args,
				Source:   srcs,
				Simplify: &simplify,
			})
			if err != nil {
				return a.fail(err)
			}
			return a.emit(resp, func(w io.Writer) error { return printWords(w, resp) })
		},
	}
	cmd.Flags().StringArrayVarP(&srcs, "source", "s", nil, "Source name (default snowball)")
	cmd.Flags().BoolVar(&raw, "raw", false, "Keep nested sources grouped")
	return cmd
}

func printWords(w io.Writer, resp domain.LookupResp) error {
	if !resp.Words.Nested() {
		_, err := fmt.Fprintln(w, strings.Join(resp.Words.Words, "\n"))
		return err
	}
	for i, g := range resp.Words.Groups {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "# %s\n", g.Name); err != nil {
			return err
		}
		for _, word := range g.Words {
			if _, err := fmt.Fprintln(w, word); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *app) sourcesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List the registered sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := a.service()
			if err != nil {
				return a.fail(err)
			}
			resp, err := svc.Sources(cmd.Context())
			if err != nil {
				return a.fail(err)
			}
			return a.emit(resp, func(w io.Writer) error {
				for _, s := range resp.Sources {
					mark := ""
					if s == resp.Default {
						mark = " (default)"
					}
					if _, err := fmt.Fprintf(w, "%s%s\n", s, mark); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func (a *app) languagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages <source>",
		Short: "List the language codes of a source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return a.fail(err)
			}
			resp, err := svc.Languages(cmd.Context(), args[0])
			if err != nil {
				return a.fail(err)
			}
			return a.emit(resp, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, strings.Join(resp.Languages, "\n"))
				return err
			})
		},
	}
}

func (a *app) codeCommand() *cobra.Command {
	var source string
	cmd := &cobra.Command{
		Use:   "code <name>",
		Short: "Resolve a language name to its code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return a.fail(err)
			}
			resp, err := svc.Code(cmd.Context(), domain.CodeQuery{Name: args[0], Source: source})
			if err != nil {
				return a.fail(err)
			}
			return a.emit(resp, func(w io.Writer) error {
				label := resp.Label
				if label == "" {
					label = "-"
				}
				_, err := fmt.Fprintf(w, "%s\t%s\n", resp.Code, label)
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&source, "source", "s", stopwords.DefaultSource, "Source whose keys are searched when no name matches")
	return cmd
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			bi := version.Info()
			return a.emit(bi, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s %s (commit %s, built %s, %s)\n", bi.Service, bi.Version, bi.Commit, bi.Date, bi.GoVersion)
				return err
			})
		},
	}
}
