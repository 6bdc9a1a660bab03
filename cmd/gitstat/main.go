package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ImSingee/go-ex/pp"
	"github.com/spf13/cobra"

	"github.com/ImSingee/gitstat/internal/config"
	"github.com/ImSingee/gitstat/internal/lib/xlog"
	"github.com/ImSingee/gitstat/internal/version"
)

const help = `Usage:
  gitstat status <path>
  gitstat refresh [path...]
  gitstat tree [path...]
  gitstat conflicts [path...]
  gitstat watch <path...>
  gitstat ui [path...]
  gitstat root
`

var commands []*cobra.Command

func main() {
	app := &cobra.Command{
		Use:           "gitstat",
		Long:          help,
		Version:       version.GetVersionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	app.AddCommand(commands...)

	// for global flags
	app.PersistentFlags().SortFlags = false
	app.PersistentFlags().StringP("root", "R", "", "change command working directory")
	app.PersistentFlags().BoolVar(&config.Debug, "debug", false, "print additional debug information")
	app.PersistentFlags().BoolP("quiet", "q", false, "quiet mode (hide any output)")
	app.PersistentFlags().String("git", "", "git command line (default from config file, or git)")
	app.PersistentFlags().String("compare", "", "tree the working tree is compared with (default HEAD)")
	app.PersistentFlags().Bool("untracked", true, "list untracked files")
	app.PersistentFlags().Bool("conflicts", true, "query conflicted paths first, and always report them as unmerged")
	app.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		quiet, _ := cmd.Flags().GetBool("quiet")
		if quiet {
			pp.Stdout.ChangeWriter(io.Discard)
			pp.Stderr.ChangeWriter(io.Discard)
		}
		xlog.Setup(quiet, config.Debug)

		if root, _ := app.PersistentFlags().GetString("root"); root != "" {
			slog.Debug("Change working directory", "root", root)
			err := os.Chdir(root)
			if err != nil {
				return ee.Wrapf(err, "cannot change working directory to %s", root)
			}
		}

		return nil
	}

	// run!
	err := app.Execute()
	if err != nil {
		if !ee.Is(err, ee.Phantom) {
			l("Error: %v", err)
		}

		os.Exit(1)
	}
}

func l(msg string, args ...any) {
	s := msg
	if len(args) != 0 {
		s = fmt.Sprintf(msg, args...)
	}

	_, _ = os.Stderr.Write([]byte("gitstat - " + strings.TrimSpace(s) + "\n"))
}
