package commands

import (
	"context"
	"flag"
)

type listCmd struct{}

func (listCmd) Name() string        { return "list" }
func (listCmd) Description() string { return "Listar una colección con filtros y paginación" }
func (listCmd) Usage() string {
	return "list <recurso> [-page N] [-search S] [-deleted] [-category ID] [-subcategory ID] [-read true|false]"
}

func (listCmd) Run(ctx context.Context, app *App, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	res, ok := resolveResource(args[0])
	if !ok {
		return ErrUsage
	}

	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(Out)
	o := listOpts{}
	fs.IntVar(&o.page, "page", 1, "número de página")
	fs.StringVar(&o.search, "search", "", "texto a buscar")
	fs.BoolVar(&o.deleted, "deleted", false, "incluir registros eliminados")
	fs.StringVar(&o.category, "category", "", "filtrar por categoría")
	fs.StringVar(&o.subcategory, "subcategory", "", "filtrar por subcategoría")
	fs.StringVar(&o.read, "read", "", "filtrar mensajes por leído (true/false)")
	if err := fs.Parse(args[1:]); err != nil {
		return ErrUsage
	}

	return res.list(ctx, app, o)
}

func init() { RegisterCmd(listCmd{}) }
