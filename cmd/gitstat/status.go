package main

import (
	"fmt"
	"log/slog"

	"github.com/ImSingee/go-ex/pp"
	"github.com/spf13/cobra"

	"github.com/ImSingee/gitstat/internal/status"
)

func init() {
	commands = append(commands, statusCommand())
}

func statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status <path>",
		Short: "Print the status of a single path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo(cmd)
			if err != nil {
				return err
			}

			names, err := r.names(args)
			if err != nil {
				return err
			}

			options, err := r.batchOptions(names)
			if err != nil {
				return err
			}

			s, err := r.resolver.QueryStatus(names[0], options)
			if err != nil {
				return err
			}
			if s == status.None {
				slog.Debug("Path has no status", "name", names[0])
				return nil
			}

			pp.Println(fmt.Sprintf("%s\t%s", s, names[0]))
			return nil
		},
	}
}
