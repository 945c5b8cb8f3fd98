package main

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/paneswitch/pkg/paneswitch/config"
	"github.com/BrandonKowalski/paneswitch/pkg/paneswitch/constants"
	"github.com/BrandonKowalski/paneswitch/pkg/paneswitch/titles"
)

func newCheckCmd() *cobra.Command {
	var (
		lang     string
		messages []string
	)

	cmd := &cobra.Command{
		Use:   "check <descriptor>",
		Short: "Validate a view descriptor and list its views",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := config.Load(args[0])
			if err != nil {
				return err
			}

			catalog, err := buildCatalog(d, lang, messages)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "default: %s\n", d.Default)
			fmt.Fprintln(out, "views:")

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, v := range d.AllViews() {
				marker := ""
				if v == d.Default {
					marker = "(default)"
				}
				fmt.Fprintf(w, "  %s\t%s\t%s\n", v, catalog.Title(v), marker)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			bindings := d.ButtonBindings()
			if len(bindings) == 0 {
				return nil
			}

			buttons := make([]constants.VirtualButton, 0, len(bindings))
			for b := range bindings {
				buttons = append(buttons, b)
			}
			slices.Sort(buttons)

			fmt.Fprintln(out, "bindings:")
			for _, b := range buttons {
				fmt.Fprintf(out, "  %s -> %s\n", b.GetName(), bindings[b])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "title language (defaults to the descriptor's language)")
	cmd.Flags().StringSliceVar(&messages, "messages", nil, "go-i18n message files with view titles")
	return cmd
}

func buildCatalog(d *config.Descriptor, lang string, messages []string) (*titles.Catalog, error) {
	catalog := titles.NewCatalog(language.English)
	for _, path := range messages {
		if err := catalog.LoadMessageFile(path); err != nil {
			return nil, err
		}
	}

	if lang == "" {
		lang = d.Language
	}
	if lang != "" {
		catalog.Use(lang)
	}

	for view, title := range d.Titles {
		catalog.SetOverride(view, title)
	}
	return catalog, nil
}
