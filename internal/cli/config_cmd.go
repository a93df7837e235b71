package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/puravida/internal/cli/formatter"
	"github.com/alexanderramin/puravida/internal/llm"
)

func newConfigCmd(app *App) *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Show the resolved configuration",
		Annotations: noBoot,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config
			credential := formatter.StyleSun.Render("not found")
			if cfg.LLM.APIKey != "" {
				credential = llm.MaskKey(cfg.LLM.APIKey) + " " + formatter.Dim("("+cfg.LLM.KeySource+")")
			} else if cfg.LLM.Provider == llm.ProviderOllama {
				credential = formatter.Dim("not needed")
			}
			endpoint := cfg.LLM.Endpoint
			if endpoint == "" {
				endpoint = formatter.Dim("default")
			}
			file := cfg.File
			if file == "" {
				file = formatter.Dim("none")
			}

			rows := [][]string{
				{"provider", string(cfg.LLM.Provider)},
				{"model", cfg.LLM.Model},
				{"endpoint", endpoint},
				{"credential", credential},
				{"temperature", strconv.FormatFloat(cfg.LLM.Tasks[llm.TaskItinerary].Temperature, 'f', -1, 64)},
				{"timeout", fmt.Sprintf("%dms", cfg.LLM.TimeoutMs)},
				{"log level", cfg.LogLevel.String()},
				{"call log", cfg.DBPath},
				{"config file", file},
				{"wedding", fmt.Sprintf("%s, %s (%s)", cfg.Wedding.Location, cfg.Wedding.Date, cfg.Wedding.Season)},
			}
			if check {
				reachable, err := providerReachable(cmd.Context(), cfg.LLM)
				if err != nil {
					return err
				}
				rows = append(rows, []string{"reachable", reachable})
			}
			fmt.Fprint(app.out(), formatter.RenderTable([]string{"SETTING", "VALUE"}, rows))
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "Check whether the provider is reachable")
	return cmd
}

// providerReachable asks a fresh client for the provider's availability.
// No generation call is made and nothing is written to the call log.
func providerReachable(ctx context.Context, cfg llm.Config) (string, error) {
	client, err := llm.NewClient(cfg, llm.NoopObserver{})
	if err != nil {
		return "", err
	}
	if client.Available(ctx) {
		return formatter.StyleJungle.Render("yes"), nil
	}
	return formatter.StyleCoral.Render("no"), nil
}
