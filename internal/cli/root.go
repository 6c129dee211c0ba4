// Package cli is the terminal host of the board.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"messageboard/internal/app"
	"messageboard/internal/config"
	"messageboard/internal/logger"
	"messageboard/internal/notice"
	"messageboard/internal/store"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
)

// session is shared by every subcommand of one invocation.
type session struct {
	cfg  *config.Config
	opts []app.Option
	out  io.Writer
	app  *app.App
}

// NewRootCmd builds the boardctl command tree. Output goes to out.
func NewRootCmd(cfg *config.Config, out io.Writer, opts ...app.Option) *cobra.Command {
	s := &session{cfg: cfg, opts: opts, out: out}

	rootCmd := &cobra.Command{
		Use:   "boardctl",
		Short: "Read and write the message board from the terminal",
		Long: `boardctl talks to the same message API as the web board. It lists
messages, posts new ones, reacts to them and shows the statistics.`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			return s.open(cmd.Context(), verbose)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(
		newListCmd(s),
		newPostCmd(s),
		newReactCmd(s),
		newStatsCmd(s),
		newAvatarsCmd(s),
	)
	return rootCmd
}

func (s *session) open(ctx context.Context, verbose bool) error {
	log := logger.Nop()
	if verbose {
		l, err := logger.New(logger.Config{Development: true})
		if err != nil {
			return err
		}
		log = l
	}

	a, err := app.New(s.cfg, log, s.opts...)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	a.Start(ctx)
	s.app = a
	return nil
}

// printNotices writes whatever the run left on screen.
func (s *session) printNotices() {
	if s.app == nil {
		return
	}
	for _, n := range s.app.Notices.Active() {
		switch n.Kind {
		case notice.KindError:
			fmt.Fprintln(s.out, color.Red.Sprint(n.Text))
		default:
			fmt.Fprintln(s.out, color.Green.Sprint(n.Text))
		}
	}
}

// ErrReported marks a failure the user has already seen as a notice.
var ErrReported = errors.New("reported")

// Execute runs cmd and returns the process exit code. Failures that were
// already shown as notices are not printed twice.
func Execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	if !reported(err) {
		fmt.Fprintln(cmd.ErrOrStderr(), color.Red.Sprintf("Error: %v", err))
	}
	return 1
}

func reported(err error) bool {
	return errors.Is(err, ErrReported) ||
		errors.Is(err, store.ErrSave) ||
		errors.Is(err, store.ErrReaction)
}
