package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/heartmarshall/partkeeper/internal/event"
)

// NewLowStockPrinter returns a LOW_STOCK handler that prints an alert banner
// to the console. It is the default subscriber wired at startup.
func NewLowStockPrinter(out io.Writer) event.Handler {
	return func(_ context.Context, e event.Event) error {
		componentID, _ := e.Payload["component_id"].(int64)
		name, _ := e.Payload["name"].(string)
		quantity, _ := e.Payload["quantity"].(int64)

		_, err := fmt.Fprintf(out, "*** LOW STOCK: %s (#%d) is down to %d ***\n",
			name, componentID, quantity)
		return err
	}
}
