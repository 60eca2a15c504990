package runner

import (
	"context"
	"encoding/json"
	"io"
	"os"
)

// JSONHandler implements OutputHandler as JSON-Lines: one Frame object per line.
type JSONHandler struct {
	Writer  io.Writer
	Encoder *json.Encoder
}

// NewJSONHandler creates a handler writing NDJSON to w (Stdout if nil).
func NewJSONHandler(w io.Writer) *JSONHandler {
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
}

func (h *JSONHandler) Frame(ctx context.Context, f Frame) error {
	return h.Encoder.Encode(f)
}

func (h *JSONHandler) Close(ctx context.Context) error {
	return nil
}
