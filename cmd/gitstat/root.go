package main

import (
	"github.com/ImSingee/go-ex/pp"
	"github.com/spf13/cobra"
)

func init() {
	commands = append(commands, rootCommand())
}

func rootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "root",
		Short: "Print the repository root of the working directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo(cmd)
			if err != nil {
				return err
			}

			pp.Println(r.root)
			return nil
		},
	}
}
