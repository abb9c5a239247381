package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Mostrar el estado de la sesión guardada" }
func (statusCmd) Usage() string       { return "status" }

// Run inspects the stored token without calling the backend. The claims are
// parsed unverified; only the server can actually validate them, this is a
// local convenience view.
func (statusCmd) Run(_ context.Context, app *App, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}

	token, err := app.Creds.LoadToken()
	if err != nil || token == "" {
		fmt.Fprintln(Out, "Sin sesión. Use 'login' para autenticarse.")
		if name := app.Auth.RememberedUsername(); name != "" {
			fmt.Fprintf(Out, "Usuario recordado: %s\n", name)
		}
		return nil
	}

	fmt.Fprintln(Out, "Sesión guardada.")

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if sub, err := claims.GetSubject(); err == nil && sub != "" {
			fmt.Fprintf(Out, "  Sujeto: %s\n", sub)
		}
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			fmt.Fprintf(Out, "  Expira: %s", exp.Format(time.RFC3339))
			if exp.Before(time.Now()) {
				fmt.Fprint(Out, " (vencido)")
			}
			fmt.Fprintln(Out)
		}
		if role, ok := claims["role"].(string); ok {
			fmt.Fprintf(Out, "  Rol: %s\n", role)
		}
	}
	if name := app.Auth.RememberedUsername(); name != "" {
		fmt.Fprintf(Out, "  Usuario recordado: %s\n", name)
	}
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
