package main

import (
	"github.com/spf13/cobra"

	"github.com/ImSingee/gitstat/internal/status"
	"github.com/ImSingee/gitstat/internal/view"
	"github.com/ImSingee/gitstat/internal/watch"
)

func init() {
	commands = append(commands, uiCommand())
}

func uiCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ui [path...]",
		Short: "Browse statuses interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo(cmd)
			if err != nil {
				return err
			}

			names, err := r.names(args)
			if err != nil {
				return err
			}

			only, err := onlyFilter(cmd)
			if err != nil {
				return err
			}

			options := &view.UIOptions{
				Title: r.root,
				Load: func() ([]*status.Record, error) {
					return r.collect(names, only)
				},
			}

			if follow, _ := cmd.Flags().GetBool("watch"); follow {
				w, err := watch.New(r.root, watch.DefaultDelay)
				if err != nil {
					return err
				}
				defer w.Close()

				options.Changes = w.Events()
			}

			return view.RunUI(options)
		},
	}

	cmd.Flags().Bool("watch", true, "refresh when the working tree changes")
	cmd.Flags().String("only", "", "only show names matching the glob pattern")

	return cmd
}
