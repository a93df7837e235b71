package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexanderramin/puravida/internal/config"
	"github.com/alexanderramin/puravida/internal/planner"
	"github.com/alexanderramin/puravida/internal/repository"
	"github.com/alexanderramin/puravida/internal/wizard"
)

// App holds the services and terminal handles used by CLI commands.
type App struct {
	Planner planner.Planner
	Calls   repository.CallLogRepo
	Config  *config.Config
	Logger  *slog.Logger

	In  io.Reader
	Out io.Writer

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool

	// Getenv is used for credential lookup; nil means os.Getenv.
	Getenv func(string) string

	// Boot wires services once flags and config are resolved. Tests leave it
	// nil and set Planner and Calls directly.
	Boot func(cfg *config.Config) error

	viper *viper.Viper
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) out() io.Writer {
	if a.Out == nil {
		return os.Stdout
	}
	return a.Out
}

func (a *App) in() io.Reader {
	if a.In == nil {
		return os.Stdin
	}
	return a.In
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.Logger
}

func (a *App) newSession() *wizard.Session {
	return wizard.NewSession(a.Planner, a.logger())
}

// NewRootCmd creates the top-level "puravida" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	if app.viper == nil {
		app.viper = config.New()
	}

	var configPath string
	root := &cobra.Command{
		Use:           "puravida",
		Short:         "Costa Rica itinerary planner for wedding guests",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(configPath, cmd.Annotations[annotationNoBoot] == "")
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default ~/.puravida.yaml)")
	pf.String("provider", "", "model provider: gemini or ollama")
	pf.String("model", "", "model name")
	pf.String("endpoint", "", "provider base URL")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("db", "", "call log database path")

	for key, flag := range map[string]string{
		config.KeyProvider: "provider",
		config.KeyModel:    "model",
		config.KeyEndpoint: "endpoint",
		config.KeyLogLevel: "log-level",
		config.KeyDB:       "db",
	} {
		_ = app.viper.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(
		newPlanCmd(app),
		newPromptCmd(app),
		newOptionsCmd(app),
		newCallsCmd(app),
		newShowCmd(app),
		newConfigCmd(app),
	)

	return root
}

// annotationNoBoot marks commands that read configuration but never touch
// the provider or the call log.
const annotationNoBoot = "puravida/no-boot"

var noBoot = map[string]string{annotationNoBoot: "true"}

// setup resolves configuration and, when boot is set, wires services. A
// Config already set on the App is kept as is.
func (a *App) setup(configPath string, boot bool) error {
	if a.Config != nil {
		return nil
	}
	if err := config.ReadFile(a.viper, configPath); err != nil {
		return err
	}
	getenv := a.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	cfg, err := config.Load(a.viper, getenv)
	if err != nil {
		return err
	}
	a.Config = cfg
	if boot && a.Boot != nil {
		return a.Boot(cfg)
	}
	return nil
}
