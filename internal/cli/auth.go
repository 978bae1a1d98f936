package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/citasmovil/citasmovil/internal/model"
	"github.com/citasmovil/citasmovil/pkg/apierr"
)

func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Iniciar sesión",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := newRenderer(app.Theme)
			if password == "" {
				fmt.Print("Contraseña: ")
				line, err := bufio.NewReader(os.Stdin).ReadString('\n')
				if err != nil {
					return err
				}
				password = strings.TrimSpace(line)
			}

			if err := app.Session.Login(cmd.Context(), email, password); err != nil {
				r.errorf("No se pudo iniciar sesión: %s", apierr.Message(err))
				return err
			}
			user := app.Session.User()
			r.successf("Bienvenido, %s (%s)", user.FullName(), user.Role)
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "correo electrónico")
	cmd.Flags().StringVarP(&password, "password", "p", "", "contraseña (se pedirá si falta)")
	cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cerrar sesión",
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap(app, cmd)
			app.Session.Logout(cmd.Context())
			newRenderer(app.Theme).infof("Sesión cerrada")
			return nil
		},
	}
}

func newRegisterCmd(app *App) *cobra.Command {
	var req model.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Crear una cuenta de paciente",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := newRenderer(app.Theme)
			resp, err := app.Auth.Register(cmd.Context(), req)
			if err != nil {
				r.errorf("No se pudo registrar: %s", apierr.Message(err))
				return err
			}
			if err := app.Store.SetToken(resp.AccessToken); err != nil {
				return err
			}
			r.successf("Cuenta creada para %s", resp.User.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Name, "nombre", "", "nombre")
	cmd.Flags().StringVar(&req.LastName, "apellido", "", "apellido")
	cmd.Flags().StringVar(&req.Email, "email", "", "correo electrónico")
	cmd.Flags().StringVar(&req.Password, "password", "", "contraseña")
	cmd.Flags().StringVar(&req.Phone, "telefono", "", "teléfono")
	cmd.MarkFlagRequired("nombre")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newChangePasswordCmd(app *App) *cobra.Command {
	var req model.ChangePasswordRequest

	cmd := &cobra.Command{
		Use:   "cambiar-password",
		Short: "Cambiar la contraseña de la cuenta",
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap(app, cmd)
			if err := app.RequireRole(model.RolePatient, model.RoleDoctor, model.RoleAdmin, model.RoleSuperAdmin); err != nil {
				return err
			}
			r := newRenderer(app.Theme)

			if err := app.Auth.ChangePassword(cmd.Context(), req); err != nil {
				r.errorf("No se pudo cambiar la contraseña: %s", apierr.Message(err))
				return err
			}
			r.successf("Contraseña actualizada")
			return nil
		},
	}
	cmd.Flags().StringVar(&req.CurrentPassword, "actual", "", "contraseña actual")
	cmd.Flags().StringVar(&req.NewPassword, "nueva", "", "contraseña nueva")
	cmd.MarkFlagRequired("actual")
	cmd.MarkFlagRequired("nueva")
	return cmd
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Mostrar la sesión actual",
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap(app, cmd)
			r := newRenderer(app.Theme)

			user := app.Session.User()
			if user == nil {
				r.infof("Sin sesión activa")
				return nil
			}
			r.table(
				[]string{"ID", "NOMBRE", "EMAIL", "ROL"},
				[][]string{{
					fmt.Sprintf("%d", user.ID), user.FullName(), user.Email, user.Role,
				}},
			)
			if ttl := app.Session.SessionTTL(time.Now()); ttl > 0 {
				r.infof("El token expira en %s", ttl.Round(time.Minute))
			}
			return nil
		},
	}
}
