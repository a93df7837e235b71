package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/puravida/internal/cli/formatter"
)

func newOptionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:         "options",
		Short:       "List the choices the wizard offers",
		Annotations: noBoot,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(app.out(), formatter.FormatCatalog())
			return nil
		},
	}
}
