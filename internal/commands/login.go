package commands

import (
	"context"
	"flag"
	"fmt"

	"BodegonAdmin/internal/service"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Iniciar sesión y guardar el token" }
func (loginCmd) Usage() string       { return "login [-remember] <usuario> <contraseña>" }

func (loginCmd) Run(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(Out)
	remember := fs.Bool("remember", false, "recordar el usuario para la próxima sesión")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	rest := fs.Args()

	var username, password string
	switch len(rest) {
	case 2:
		username, password = rest[0], rest[1]
	case 1:
		// remembered username lets the operator type just the password
		username = app.Auth.RememberedUsername()
		password = rest[0]
		if username == "" {
			return ErrUsage
		}
	default:
		return ErrUsage
	}

	app.BeginLoginView()
	defer app.EndLoginView()

	res, err := app.Auth.Login(ctx, service.Credentials{Username: username, Password: password}, *remember)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Sesión iniciada como %s (%s)\n", res.Username, res.Role)
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
