package commands

import (
	"context"
	"fmt"
)

type deleteCmd struct{}

func (deleteCmd) Name() string        { return "delete" }
func (deleteCmd) Description() string { return "Eliminar (borrado lógico) un registro" }
func (deleteCmd) Usage() string       { return "delete <recurso> <id>" }

func (deleteCmd) Run(ctx context.Context, app *App, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	res, ok := resolveResource(args[0])
	if !ok {
		return ErrUsage
	}
	if err := res.remove(ctx, app, args[1]); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Registro eliminado")
	return nil
}

func init() { RegisterCmd(deleteCmd{}) }
