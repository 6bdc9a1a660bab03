package main

import (
	"fmt"
	"sort"

	"github.com/ImSingee/go-ex/pp"
	"github.com/spf13/cobra"
	"github.com/ysmood/gson"

	"github.com/ImSingee/gitstat/internal/status"
)

func init() {
	commands = append(commands, refreshCommand())
}

func refreshCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refresh [path...]",
		Short: "Resolve the status of many paths at once (the whole repository if none given)",
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

			records, err := r.collect(names, only)
			if err != nil {
				return err
			}
			statuses := status.Statuses(records)

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				pp.Println(gson.New(statuses).JSON("", "  "))
				return nil
			}

			keys := make([]string, 0, len(statuses))
			for name := range statuses {
				keys = append(keys, name)
			}
			sort.Strings(keys)

			for _, name := range keys {
				pp.Println(fmt.Sprintf("%s\t%s", statuses[name], name))
			}
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "print a json object of name to status")
	cmd.Flags().String("only", "", "only report names matching the glob pattern")

	return cmd
}
