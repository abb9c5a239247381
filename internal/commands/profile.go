package commands

import (
	"context"
	"flag"
	"fmt"

	"BodegonAdmin/internal/service"
)

type profileCmd struct{}

func (profileCmd) Name() string        { return "profile" }
func (profileCmd) Description() string { return "Ver o modificar la cuenta propia" }
func (profileCmd) Usage() string {
	return "profile [-username U] [-password P] [-first N] [-last A] [-phone T]"
}

func (profileCmd) Run(ctx context.Context, app *App, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	fs.SetOutput(Out)
	username := fs.String("username", "", "nuevo usuario")
	password := fs.String("password", "", "nueva contraseña")
	first := fs.String("first", "", "nuevo nombre de pila")
	last := fs.String("last", "", "nuevo apellido")
	phone := fs.String("phone", "", "nuevo teléfono")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if len(set) > 0 {
		strPtr := func(name string, v *string) *string {
			if set[name] {
				return v
			}
			return nil
		}
		err := app.Profile.Save(ctx, service.UpdateProfile{
			Username:  strPtr("username", username),
			Password:  strPtr("password", password),
			FirstName: strPtr("first", first),
			LastName:  strPtr("last", last),
			Phone:     strPtr("phone", phone),
		})
		if err != nil {
			return err
		}
	} else if _, err := app.Profile.Load(ctx); err != nil {
		return err
	}

	u := app.Profile.Current()
	fmt.Fprintf(Out, "Cuenta %s\n  Usuario: %s\n  Nombre: %s %s\n", u.ID, u.Username, u.FirstName, u.LastName)
	if u.Phone != "" {
		fmt.Fprintf(Out, "  Teléfono: %s\n", u.Phone)
	}
	fmt.Fprintf(Out, "  Rol: %s\n", u.Role)
	return nil
}

func init() { RegisterCmd(profileCmd{}) }
