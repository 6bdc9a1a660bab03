package main

import (
	"github.com/ImSingee/go-ex/pp"
	"github.com/spf13/cobra"
	"github.com/ysmood/gson"

	"github.com/ImSingee/gitstat/internal/status"
	"github.com/ImSingee/gitstat/internal/view"
)

func init() {
	commands = append(commands, treeCommand())
}

func treeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree [path...]",
		Short: "Print resolved records in display order, directories after their contents",
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
			records = status.OrderForDisplay(records)

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				pp.Println(gson.New(records).JSON("", "  "))
				return nil
			}

			decorate := view.Colored(view.Letters)
			if plain, _ := cmd.Flags().GetBool("plain"); plain {
				decorate = view.Letters
			}
			for _, record := range records {
				pp.Println(view.FormatRecord(record, decorate))
			}
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "print records as a json array")
	cmd.Flags().String("only", "", "only show names matching the glob pattern")
	cmd.Flags().Bool("plain", false, "do not color status letters")

	return cmd
}
