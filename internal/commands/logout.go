package commands

import (
	"context"
	"fmt"
)

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Cerrar la sesión actual" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(_ context.Context, app *App, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if err := app.Auth.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Sesión cerrada")
	return nil
}

func init() { RegisterCmd(logoutCmd{}) }
