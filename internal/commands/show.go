package commands

import "context"

type showCmd struct{}

func (showCmd) Name() string        { return "show" }
func (showCmd) Description() string { return "Mostrar un registro por id" }
func (showCmd) Usage() string       { return "show <recurso> <id>" }

func (showCmd) Run(ctx context.Context, app *App, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	res, ok := resolveResource(args[0])
	if !ok {
		return ErrUsage
	}
	return res.show(ctx, app, args[1])
}

func init() { RegisterCmd(showCmd{}) }
