package commands

import (
	"context"
	"fmt"
)

type readCmd struct{}

func (readCmd) Name() string        { return "read" }
func (readCmd) Description() string { return "Leer un mensaje de contacto (lo marca como leído)" }
func (readCmd) Usage() string       { return "read <id>" }

func (readCmd) Run(ctx context.Context, app *App, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	return showContact(ctx, app, args[0])
}

// showContact prints a contact message through the inbox controller, which
// marks unread messages as read and refreshes the unread count. Opening a
// message is reading it; there is no silent peek.
func showContact(ctx context.Context, app *App, id string) error {
	if err := app.Contacts.View(ctx, id); err != nil {
		return err
	}
	c := app.Contacts.Snapshot().Selected

	fmt.Fprintf(Out, "Mensaje %s\n  De: %s <%s>\n", c.ID, c.Name, c.Email)
	if c.Phone != "" {
		fmt.Fprintf(Out, "  Teléfono: %s\n", c.Phone)
	}
	fmt.Fprintf(Out, "  Recibido: %s\n  Leído: %s\n  Estado: %s\n",
		c.CreatedAt.Format("2006-01-02 15:04"), boolLabel(c.IsRead), status(c.IsDeleted))
	optStamp("Leído", c.ReadAt, c.ReadBy)
	optStamp("Eliminado", c.DeletedAt, c.DeletedBy)
	optStamp("Restaurado", c.RestoredAt, c.RestoredBy)
	fmt.Fprintf(Out, "\n%s\n", c.Message)
	app.Contacts.CloseModal()
	return nil
}

func init() { RegisterCmd(readCmd{}) }
