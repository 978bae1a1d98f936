package cli

import (
	"github.com/spf13/cobra"

	"github.com/citasmovil/citasmovil/internal/store"
)

// NewRootCmd builds the command tree. Commands that need a session call
// bootstrap through their guard; anonymous commands (login, theme) don't.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "citasmovil",
		Short:         "Cliente de CitaSalud: citas médicas desde la terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newRegisterCmd(app),
		newChangePasswordCmd(app),
		newWhoamiCmd(app),
		newAppointmentsCmd(app),
		newPatientsCmd(app),
		newDoctorsCmd(app),
		newSpecialtiesCmd(app),
		newUsersCmd(app),
		newStatsCmd(app),
		newReportsCmd(app),
		newNotificationsCmd(app),
		newThemeCmd(app),
		newRemindersCmd(app),
	)
	return root
}

// bootstrap restores the session from the persisted token, once per
// invocation. A failed bootstrap leaves the session anonymous; the guard
// will surface the login prompt.
func bootstrap(app *App, cmd *cobra.Command) {
	if app.Session.State() == store.StateAuthenticated {
		return
	}
	app.Session.Bootstrap(cmd.Context())
}
