package commands

import (
	"context"
	"fmt"
)

type restoreCmd struct{}

func (restoreCmd) Name() string        { return "restore" }
func (restoreCmd) Description() string { return "Restaurar un registro eliminado" }
func (restoreCmd) Usage() string       { return "restore <recurso> <id>" }

func (restoreCmd) Run(ctx context.Context, app *App, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	res, ok := resolveResource(args[0])
	if !ok {
		return ErrUsage
	}
	if err := res.restore(ctx, app, args[1]); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Registro restaurado")
	return nil
}

func init() { RegisterCmd(restoreCmd{}) }
