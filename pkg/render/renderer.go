package render

import (
	"context"

	"github.com/goliatone/go-cardform/pkg/model"
)

// Renderer converts a FormModel into a byte representation (HTML, prompt
// transcript, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, model model.FormModel, options RenderOptions) ([]byte, error)
}
