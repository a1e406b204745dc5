package commands

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"beeminder-dow/internal/app"
	"beeminder-dow/internal/beeminder"
	"beeminder-dow/internal/domain"
	"beeminder-dow/internal/logging"
	"beeminder-dow/internal/schedule"
)

var (
	apiKeyFile string
	baseURL    string
	passphrase string
	horizon    int
	verbose    bool
)

// invocation carries what one run resolves before its RunE executes.
type invocation struct {
	now func() time.Time

	cfg     app.Config
	logger  zerolog.Logger
	pattern domain.DowPattern
}

// Execute runs the CLI against the process arguments and returns the exit code.
func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr, time.Now)
}

func run(args []string, stdout, stderr io.Writer, now func() time.Time) int {
	root := newRootCmd(&invocation{now: now})
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return report(root.Execute(), stdout, stderr)
}

func newRootCmd(inv *invocation) *cobra.Command {
	root := &cobra.Command{
		Use:   "beeminder-dow [flags] <goal> <dow_spec>",
		Short: "Preview regular weekly holidays for a Beeminder goal",
		Long: `Preview regular weekly holidays for a Beeminder goal.

The dow_spec argument is 7 characters long, one per day of the week starting
on Monday. Any character other than '-' means the goal counts on that day, so
mnemonic letters in any language work: "mtwtf--", "yyyyy--", "ΔΤΤΠΠ--" and
"пвсчп--" all describe a weekdays-only goal.

Flags go before <goal>. Everything after it is positional, so a dow_spec may
start with '-' ("-twtf--", "-------").`,
		Args:          inv.validateArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := app.LoadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("api-key-file") {
				loaded.APIKeyFile = apiKeyFile
			}
			if flags.Changed("base-url") {
				loaded.BaseURL = baseURL
			}
			if flags.Changed("passphrase") {
				loaded.Passphrase = passphrase
			}
			if flags.Changed("horizon") {
				loaded.Horizon = horizon
			}
			if flags.Changed("verbose") {
				loaded.Verbose = verbose
			}
			loaded.Now = inv.now
			inv.cfg = loaded

			inv.logger = logging.SetupWithWriter(inv.cfg.Verbose, cmd.ErrOrStderr())
			return nil
		},
		RunE: inv.preview,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	root.PersistentFlags().StringVarP(&apiKeyFile, "api-key-file", "k", app.DefaultAPIKeyFile, "file holding your Beeminder auth token")
	root.PersistentFlags().StringVar(&baseURL, "base-url", beeminder.DefaultBaseURL, "Beeminder API base URL")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase for a sealed api key file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	root.Flags().IntVar(&horizon, "horizon", schedule.DefaultHorizon, "number of days to preview")
	// A dow_spec like "-------" must not parse as flags.
	root.Flags().SetInterspersed(false)

	root.AddCommand(sealKeyCmd(inv))
	return root
}

// validateArgs checks the positional arguments before any I/O happens.
func (inv *invocation) validateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(2)(cmd, args); err != nil {
		return usageError{err}
	}
	p, err := schedule.ParseDowPattern(args[1])
	if err != nil {
		return usageError{err}
	}
	inv.pattern = p
	return nil
}
