package runner

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/cellsweep/internal/presentation/tui"
)

// ColumnsHandler buffers frames and prints them side by side on Close.
type ColumnsHandler struct {
	Writer  io.Writer
	printer tui.ColumnPrinter
}

// NewColumnsHandler creates a handler writing to w (Stdout if nil).
func NewColumnsHandler(w io.Writer) *ColumnsHandler {
	if w == nil {
		w = os.Stdout
	}
	return &ColumnsHandler{Writer: w}
}

func (h *ColumnsHandler) Frame(ctx context.Context, f Frame) error {
	h.printer.Append(f.Grid.String())
	return nil
}

func (h *ColumnsHandler) Close(ctx context.Context) error {
	if h.printer.Len() == 0 {
		return nil
	}
	_, err := fmt.Fprintln(h.Writer, h.printer.String())
	return err
}
