// Package cli implements the interactive console for the inventory service.
// It reads menu choices from an input stream and renders results as plain
// text tables, keeping the loop alive across individual command failures.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/heartmarshall/partkeeper/internal/domain"
	"github.com/heartmarshall/partkeeper/internal/service/inventory"
)

// inventoryService is the surface of the inventory service the menu uses.
type inventoryService interface {
	AddComponent(ctx context.Context, user domain.User, input inventory.AddComponentInput) (int64, error)
	UpdateStatus(ctx context.Context, user domain.User, input inventory.UpdateStatusInput) error
	AdjustQuantity(ctx context.Context, user domain.User, input inventory.AdjustQuantityInput) error
	SetMinQuantity(ctx context.Context, user domain.User, input inventory.SetMinQuantityInput) error
	GetComponent(ctx context.Context, id int64) (domain.Component, error)
	ListComponents(ctx context.Context) ([]domain.Component, error)
	ListLowStock(ctx context.Context) ([]domain.Component, error)
	ListLogs(ctx context.Context, input inventory.ListLogsInput) ([]domain.LogEntry, error)
}

// Menu is the interactive top-level loop.
type Menu struct {
	log      *slog.Logger
	svc      inventoryService
	user     domain.User
	logLimit int
	in       *bufio.Scanner
	out      io.Writer
}

// NewMenu wires the menu to a service and the operator identity used for the
// audit trail. Input is consumed line by line. logLimit caps the activity
// views; zero falls back to the service default.
func NewMenu(log *slog.Logger, svc inventoryService, user domain.User, logLimit int, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		log:      log.With("transport", "cli"),
		svc:      svc,
		user:     user,
		logLimit: logLimit,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// errQuit signals a clean exit chosen from the menu.
var errQuit = errors.New("quit")

// Run loops until the operator exits, input ends, or the context is
// cancelled. Command errors are printed and the loop continues.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printMenu()
		choice, err := m.readLine("> ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		err = m.dispatch(ctx, strings.TrimSpace(choice))
		switch {
		case errors.Is(err, errQuit):
			fmt.Fprintln(m.out, "Bye.")
			return nil
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			m.log.DebugContext(ctx, "command failed",
				slog.String("choice", choice), slog.Any("error", err))
			fmt.Fprintf(m.out, "Error: %v\n", err)
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprint(m.out, `
=== Component Inventory ===
 1) List components
 2) Add component
 3) Update status
 4) Adjust quantity
 5) Set minimum quantity
 6) Component history
 7) Recent activity
 8) Low stock report
 9) Exit
`)
}

func (m *Menu) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case "1":
		return m.listComponents(ctx)
	case "2":
		return m.addComponent(ctx)
	case "3":
		return m.updateStatus(ctx)
	case "4":
		return m.adjustQuantity(ctx)
	case "5":
		return m.setMinQuantity(ctx)
	case "6":
		return m.componentHistory(ctx)
	case "7":
		return m.recentActivity(ctx)
	case "8":
		return m.lowStockReport(ctx)
	case "9", "q", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown option %q", choice)
	}
}

func (m *Menu) listComponents(ctx context.Context) error {
	comps, err := m.svc.ListComponents(ctx)
	if err != nil {
		return err
	}
	m.printComponents(comps)
	return nil
}

func (m *Menu) addComponent(ctx context.Context) error {
	name, err := m.readNonEmpty("Name: ")
	if err != nil {
		return err
	}
	description, err := m.readLine("Description (optional): ")
	if err != nil {
		return err
	}
	status, err := m.readStatus()
	if err != nil {
		return err
	}
	quantity, err := m.readInt64("Quantity: ")
	if err != nil {
		return err
	}
	minQuantity, err := m.readInt64("Minimum quantity: ")
	if err != nil {
		return err
	}

	id, err := m.svc.AddComponent(ctx, m.user, inventory.AddComponentInput{
		Name:        name,
		Description: strings.TrimSpace(description),
		Status:      status,
		Quantity:    quantity,
		MinQuantity: minQuantity,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(m.out, "Created component #%d.\n", id)
	return nil
}

func (m *Menu) updateStatus(ctx context.Context) error {
	id, err := m.readInt64("Component id: ")
	if err != nil {
		return err
	}
	status, err := m.readStatus()
	if err != nil {
		return err
	}
	message, err := m.readLine("Message (optional): ")
	if err != nil {
		return err
	}

	if err := m.svc.UpdateStatus(ctx, m.user, inventory.UpdateStatusInput{
		ComponentID: id,
		NewStatus:   status,
		Message:     message,
	}); err != nil {
		return err
	}

	fmt.Fprintln(m.out, "Status updated.")
	return nil
}

func (m *Menu) adjustQuantity(ctx context.Context) error {
	id, err := m.readInt64("Component id: ")
	if err != nil {
		return err
	}
	delta, err := m.readInt64("Delta (+receive / -consume): ")
	if err != nil {
		return err
	}
	message, err := m.readLine("Message (optional): ")
	if err != nil {
		return err
	}

	if err := m.svc.AdjustQuantity(ctx, m.user, inventory.AdjustQuantityInput{
		ComponentID: id,
		Delta:       delta,
		Message:     message,
	}); err != nil {
		return err
	}

	fmt.Fprintln(m.out, "Quantity adjusted.")
	return nil
}

func (m *Menu) setMinQuantity(ctx context.Context) error {
	id, err := m.readInt64("Component id: ")
	if err != nil {
		return err
	}
	minQuantity, err := m.readInt64("Minimum quantity: ")
	if err != nil {
		return err
	}
	message, err := m.readLine("Message (optional): ")
	if err != nil {
		return err
	}

	if err := m.svc.SetMinQuantity(ctx, m.user, inventory.SetMinQuantityInput{
		ComponentID: id,
		MinQuantity: minQuantity,
		Message:     message,
	}); err != nil {
		return err
	}

	fmt.Fprintln(m.out, "Minimum quantity updated.")
	return nil
}

func (m *Menu) componentHistory(ctx context.Context) error {
	id, err := m.readInt64("Component id: ")
	if err != nil {
		return err
	}

	// Resolve the component first so a bad id fails with a clear error.
	comp, err := m.svc.GetComponent(ctx, id)
	if err != nil {
		return err
	}

	logs, err := m.svc.ListLogs(ctx, inventory.ListLogsInput{ComponentID: &id, Limit: m.logLimit})
	if err != nil {
		return err
	}

	fmt.Fprintf(m.out, "History for %s (#%d):\n", comp.Name, comp.ID)
	m.printLogs(logs)
	return nil
}

func (m *Menu) recentActivity(ctx context.Context) error {
	logs, err := m.svc.ListLogs(ctx, inventory.ListLogsInput{Limit: m.logLimit})
	if err != nil {
		return err
	}
	m.printLogs(logs)
	return nil
}

func (m *Menu) lowStockReport(ctx context.Context) error {
	comps, err := m.svc.ListLowStock(ctx)
	if err != nil {
		return err
	}
	if len(comps) == 0 {
		fmt.Fprintln(m.out, "No components need replenishment.")
		return nil
	}

	fmt.Fprintln(m.out, "Components needing replenishment (worst deficit first):")
	for _, c := range comps {
		fmt.Fprintf(m.out, "  #%-4d %-30s qty %d / min %d (short %d)\n",
			c.ID, c.Name, c.Quantity, c.MinQuantity, c.MinQuantity-c.Quantity)
	}
	return nil
}

func (m *Menu) printComponents(comps []domain.Component) {
	if len(comps) == 0 {
		fmt.Fprintln(m.out, "No components.")
		return
	}
	fmt.Fprintf(m.out, "%-5s %-30s %-10s %8s %8s %s\n",
		"ID", "NAME", "STATUS", "QTY", "MIN", "FLAGS")
	for _, c := range comps {
		flag := ""
		if c.RequiresReplenishment() {
			flag = "LOW"
		}
		fmt.Fprintf(m.out, "%-5d %-30s %-10s %8d %8d %s\n",
			c.ID, c.Name, c.Status, c.Quantity, c.MinQuantity, flag)
	}
}

func (m *Menu) printLogs(logs []domain.LogEntry) {
	if len(logs) == 0 {
		fmt.Fprintln(m.out, "No log entries.")
		return
	}
	for _, l := range logs {
		fmt.Fprintf(m.out, "[%s] #%d %s by %s: %s%s\n",
			l.Timestamp.Format("2006-01-02 15:04:05"),
			l.ComponentID, l.Action, l.UserName, l.Message, formatTransition(l))
	}
}

func formatTransition(l domain.LogEntry) string {
	switch {
	case l.StatusBefore != nil && l.StatusAfter != nil:
		return fmt.Sprintf(" (%s -> %s)", *l.StatusBefore, *l.StatusAfter)
	case l.QtyBefore != nil && l.QtyAfter != nil:
		return fmt.Sprintf(" (%d -> %d)", *l.QtyBefore, *l.QtyAfter)
	case l.StatusAfter != nil && l.QtyAfter != nil:
		return fmt.Sprintf(" (status %s, qty %d)", *l.StatusAfter, *l.QtyAfter)
	default:
		return ""
	}
}

func (m *Menu) readLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return m.in.Text(), nil
}

// readNonEmpty re-asks until the operator enters a non-blank value.
func (m *Menu) readNonEmpty(prompt string) (string, error) {
	for {
		s, err := m.readLine(prompt)
		if err != nil {
			return "", err
		}
		s = strings.TrimSpace(s)
		if s != "" {
			return s, nil
		}
		fmt.Fprintln(m.out, "Value required.")
	}
}

// readInt64 re-asks until the operator enters a valid integer.
func (m *Menu) readInt64(prompt string) (int64, error) {
	for {
		s, err := m.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(m.out, "Enter a whole number.")
	}
}

// readStatus re-asks until the operator enters one of the known statuses.
func (m *Menu) readStatus() (domain.Status, error) {
	prompt := fmt.Sprintf("Status %v: ", domain.AllStatuses())
	for {
		s, err := m.readLine(prompt)
		if err != nil {
			return "", err
		}
		status := domain.Status(strings.ToLower(strings.TrimSpace(s)))
		if status.IsValid() {
			return status, nil
		}
		fmt.Fprintln(m.out, "Unknown status.")
	}
}
