package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/ImSingee/go-ex/pp"
	"github.com/spf13/cobra"

	"github.com/ImSingee/gitstat/internal/status"
	"github.com/ImSingee/gitstat/internal/view"
	"github.com/ImSingee/gitstat/internal/watch"
)

func init() {
	commands = append(commands, watchCommand())
}

func watchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <path...>",
		Short: "Print status changes of the given paths until interrupted",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo(cmd)
			if err != nil {
				return err
			}

			names, err := r.names(args)
			if err != nil {
				return err
			}

			registry := view.NewRegistry()
			for _, name := range names {
				name := name
				registry.Register(name, func(old, new status.Status) {
					if old == new {
						return
					}
					pp.Println(fmt.Sprintf("%s\t%s", view.Names(new), name))
				})
			}

			refresh := func() error {
				watched := registry.Names()

				options, err := r.batchOptions(watched)
				if err != nil {
					return err
				}

				statuses, err := r.resolver.BatchRefresh(watched, options)
				if err != nil {
					return err
				}

				registry.Apply(statuses)
				return nil
			}

			delay, _ := cmd.Flags().GetDuration("delay")
			w, err := watch.New(r.root, delay)
			if err != nil {
				return err
			}
			defer w.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			if err := refresh(); err != nil {
				return err
			}

			for {
				select {
				case <-ctx.Done():
					return nil
				case _, ok := <-w.Events():
					if !ok {
						return nil
					}

					slog.Debug("Working tree changed, refresh")
					if err := refresh(); err != nil {
						return err
					}
				}
			}
		},
	}

	cmd.Flags().Duration("delay", watch.DefaultDelay, "wait this long for changes to settle before refreshing")

	return cmd
}
