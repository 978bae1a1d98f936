package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newThemeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme [light|dark|system]",
		Short: "Ver o cambiar el tema",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := newRenderer(app.Theme)
			if len(args) == 0 {
				r.infof("Tema actual: %s", app.Theme.Preference())
				return nil
			}
			if err := app.Theme.SetPreference(args[0]); err != nil {
				return fmt.Errorf("no se pudo guardar el tema: %w", err)
			}
			r.successf("Tema cambiado a %s", app.Theme.Preference())
			return nil
		},
	}
	return cmd
}
