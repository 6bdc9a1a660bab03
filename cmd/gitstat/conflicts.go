package main

import (
	"github.com/ImSingee/go-ex/pp"
	"github.com/spf13/cobra"

	"github.com/ImSingee/gitstat/internal/status"
)

func init() {
	commands = append(commands, conflictsCommand())
}

func conflictsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "conflicts [path...]",
		Short: "List paths with unresolved merge conflicts",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo(cmd)
			if err != nil {
				return err
			}
			r.config.Conflicts = true

			names, err := r.names(args)
			if err != nil {
				return err
			}

			records, err := r.collect(names, nil)
			if err != nil {
				return err
			}

			for _, record := range records {
				if record.Status == status.Unmerged {
					pp.Println(record.Name)
				}
			}
			return nil
		},
	}
}
