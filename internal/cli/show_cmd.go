package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/puravida/internal/cli/formatter"
	"github.com/alexanderramin/puravida/internal/importer"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:         "show FILE",
		Short:       "Display an itinerary saved with plan --export",
		Args:        cobra.ExactArgs(1),
		Annotations: noBoot,
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := importer.LoadItinerary(args[0])
			if err != nil {
				return err
			}
			if app.interactive() {
				_, err := runResultView(app.in(), app.out(), it, nil)
				return err
			}
			fmt.Fprint(app.out(), formatter.FormatItinerary(it, nil, 0))
			return nil
		},
	}
}
