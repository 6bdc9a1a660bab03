package main

import (
	"github.com/ImSingee/go-ex/pp"
	"github.com/spf13/cobra"

	"github.com/ImSingee/gitstat/internal/config"
	"github.com/ImSingee/gitstat/internal/lib/git"
	"github.com/ImSingee/gitstat/internal/version"
)

func init() {
	commands = append(commands, versionCommand())
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print gitstat and git versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pp.Println("gitstat", version.GetVersionString())

			command, err := gitFromFlags(cmd)
			if err != nil {
				return err
			}
			if command == nil {
				command = config.Default().Git
			}

			v, err := newGit("", command).Version()
			if err != nil {
				return err
			}

			pp.Println("git", v.String())
			if !git.IsSupportedVersion(v) {
				pp.Println(pp.YellowString("⚠ git %s is older than %s, statuses may be wrong", v, git.MinimumVersion).GetForStdout())
			}
			return nil
		},
	}
}
