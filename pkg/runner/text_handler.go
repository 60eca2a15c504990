package runner

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/cellsweep/internal/presentation/tui"
	"github.com/muesli/termenv"
)

// TextHandler writes every frame as grid text preceded by a header line.
type TextHandler struct {
	Writer  io.Writer
	Profile termenv.Profile
	Header  bool
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithColor renders live cells with the given colour profile.
func WithColor(p termenv.Profile) TextHandlerOption {
	return func(h *TextHandler) {
		h.Profile = p
	}
}

// WithoutHeader omits the "generation N" line.
func WithoutHeader() TextHandlerOption {
	return func(h *TextHandler) {
		h.Header = false
	}
}

// NewTextHandler creates a handler writing plain text to w (Stdout if nil).
func NewTextHandler(w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Writer:  w,
		Profile: termenv.Ascii,
		Header:  true,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) Frame(ctx context.Context, f Frame) error {
	if h.Header {
		if _, err := fmt.Fprintf(h.Writer, "generation %d (population %d)\n", f.Generation, f.Population); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(h.Writer, tui.Colorize(f.Grid.String(), h.Profile))
	return err
}

func (h *TextHandler) Close(ctx context.Context) error {
	return nil
}
