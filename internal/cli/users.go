package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/citasmovil/citasmovil/internal/model"
	"github.com/citasmovil/citasmovil/pkg/apierr"
)

func newUsersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "usuarios",
		Short:   "Administrar usuarios del sistema",
		Aliases: []string{"users"},
	}
	cmd.AddCommand(
		newUsersListCmd(app),
		newUsersCreateCmd(app),
		newUsersToggleCmd(app),
		newUsersDeleteCmd(app),
	)
	return cmd
}

func newUsersListCmd(app *App) *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Listar usuarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap(app, cmd)
			if err := app.RequireRole(model.RoleAdmin, model.RoleSuperAdmin); err != nil {
				return err
			}
			r := newRenderer(app.Theme)

			app.Users.Fetch(cmd.Context(), model.UserFilters{Role: role})
			if msg := app.Users.Err(); msg != "" {
				r.errorf("%s", msg)
				return errors.New(msg)
			}

			rows := make([][]string, 0)
			for _, u := range app.Users.Items() {
				active := "sí"
				if !u.Active {
					active = "no"
				}
				rows = append(rows, []string{
					strconv.FormatInt(u.ID, 10), u.FullName(), u.Email, u.Role, active,
				})
			}
			r.table([]string{"ID", "NOMBRE", "EMAIL", "ROL", "ACTIVO"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "rol", "", "filtrar por rol")
	return cmd
}

func newUsersCreateCmd(app *App) *cobra.Command {
	var req model.CreateUserRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Crear un usuario",
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap(app, cmd)
			if err := app.RequireRole(model.RoleSuperAdmin); err != nil {
				return err
			}
			r := newRenderer(app.Theme)

			u, err := app.Users.Create(cmd.Context(), req)
			if err != nil {
				r.errorf("No se pudo crear: %s", apierr.Message(err))
				return err
			}
			r.successf("Usuario %d creado (%s)", u.ID, u.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Name, "nombre", "", "nombre")
	cmd.Flags().StringVar(&req.LastName, "apellido", "", "apellido")
	cmd.Flags().StringVar(&req.Email, "email", "", "correo electrónico")
	cmd.Flags().StringVar(&req.Password, "password", "", "contraseña")
	cmd.Flags().StringVar(&req.Role, "rol", model.RolePatient, "rol del usuario")
	cmd.Flags().StringVar(&req.Phone, "telefono", "", "teléfono")
	cmd.MarkFlagRequired("nombre")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newUsersToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Activar o desactivar un usuario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap(app, cmd)
			if err := app.RequireRole(model.RoleAdmin, model.RoleSuperAdmin); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido: %s", args[0])
			}
			r := newRenderer(app.Theme)

			u, err := app.Users.ToggleActive(cmd.Context(), id)
			if err != nil {
				r.errorf("%s", apierr.Message(err))
				return err
			}
			state := "activado"
			if !u.Active {
				state = "desactivado"
			}
			r.successf("Usuario %d %s", u.ID, state)
			return nil
		},
	}
}

func newUsersDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Eliminar un usuario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap(app, cmd)
			if err := app.RequireRole(model.RoleSuperAdmin); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido: %s", args[0])
			}
			r := newRenderer(app.Theme)

			if err := app.Users.Delete(cmd.Context(), id); err != nil {
				r.errorf("No se pudo eliminar: %s", apierr.Message(err))
				return err
			}
			r.successf("Usuario %d eliminado", id)
			return nil
		},
	}
}
