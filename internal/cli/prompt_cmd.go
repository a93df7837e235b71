package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/puravida/internal/cli/formatter"
	"github.com/alexanderramin/puravida/internal/domain"
	"github.com/alexanderramin/puravida/internal/planner"
	"github.com/alexanderramin/puravida/internal/wizard"
)

func newPromptCmd(app *App) *cobra.Command {
	var (
		prefs      preferenceFlags
		withSchema bool
	)

	cmd := &cobra.Command{
		Use:         "prompt",
		Short:       "Print the itinerary request without calling a provider",
		Annotations: noBoot,
		Example:     `  puravida prompt --name "Jane Doe" --days 5 --activity Surfing --schema`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := wizard.New()
			if err := prefs.apply(w.Preferences()); err != nil {
				return err
			}
			if err := w.Ready(); err != nil {
				return err
			}

			req := planner.BuildItineraryRequest(w.Snapshot(), app.Config.Wedding)
			out := app.out()

			fmt.Fprintln(out, formatter.Header("Route"))
			fmt.Fprintf(out, "%s %s\n", formatter.Dim("mode:"), req.Routing.Mode)
			if len(req.Routing.Regions) > 0 {
				fmt.Fprintf(out, "%s %s\n", formatter.Dim("order:"), domain.JoinValues(req.Routing.Regions))
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.Header("System"))
			fmt.Fprintln(out, req.SystemPrompt)
			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.Header("Prompt"))
			fmt.Fprintln(out, req.UserPrompt)

			if withSchema {
				data, err := json.MarshalIndent(req.Schema, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding schema: %w", err)
				}
				fmt.Fprintln(out)
				fmt.Fprintln(out, formatter.Header("Schema"))
				fmt.Fprintln(out, string(data))
			}
			return nil
		},
	}

	prefs.register(cmd.Flags())
	cmd.Flags().BoolVar(&withSchema, "schema", false, "also print the response schema")
	return cmd
}
