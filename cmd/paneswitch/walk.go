package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/paneswitch/pkg/paneswitch"
	"github.com/BrandonKowalski/paneswitch/pkg/paneswitch/config"
	"github.com/BrandonKowalski/paneswitch/pkg/paneswitch/navigation"
)

// scriptedPane installs the exit behavior requested on the command line.
type scriptedPane struct {
	view    string
	guard   bool
	confirm bool
	out     io.Writer
	pending **navigation.Resumer[string]
}

func (p scriptedPane) View() string { return p.view }

func (p scriptedPane) Mount(c *navigation.Controller[string]) {
	h := navigation.Handlers[string]{
		OnEntered: func() { fmt.Fprintf(p.out, "entered %s\n", p.view) },
	}

	switch {
	case p.guard:
		h.OnExit = func(e *navigation.ExitEvent[string]) { e.Prevent() }
	case p.confirm:
		h.OnExit = func(e *navigation.ExitEvent[string]) { *p.pending = e.Suspend() }
	}

	navigation.RegisterHandlers(c, h)
}

func newWalkCmd() *cobra.Command {
	var (
		guard   string
		confirm string
	)

	cmd := &cobra.Command{
		Use:   "walk <descriptor> <view>...",
		Short: "Navigate through views in order and print each outcome",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := config.Load(args[0])
			if err != nil {
				return err
			}

			for _, flag := range []string{guard, confirm} {
				if flag != "" && !slices.Contains(d.AllViews(), flag) {
					return fmt.Errorf("%w %q", paneswitch.ErrUnknownView, flag)
				}
			}

			nav, err := config.NewController[string](d, navigation.WithLogger(paneswitch.GetLogger()))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var pending *navigation.Resumer[string]

			panes := make([]scriptedPane, 0, len(d.AllViews()))
			for _, v := range d.AllViews() {
				panes = append(panes, scriptedPane{
					view:    v,
					guard:   v == guard,
					confirm: v == confirm,
					out:     out,
					pending: &pending,
				})
			}

			host := navigation.NewHost(nav, panes...)
			defer host.Close()

			for _, target := range args[1:] {
				outcome := nav.Navigate(target)
				fmt.Fprintf(out, "%s: %s (active %s)\n", target, outcome, nav.Active())

				if outcome == navigation.Suspended && pending != nil {
					result := pending.Resume()
					fmt.Fprintf(out, "%s: confirmed, %s (active %s)\n", target, result, nav.Active())
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&guard, "guard", "", "view whose exit handler prevents leaving it")
	cmd.Flags().StringVar(&confirm, "confirm", "", "view whose exit handler suspends until confirmed")
	return cmd
}
