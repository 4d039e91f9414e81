package render

import (
	"fmt"

	"github.com/katalvlaran/lvdice/distribution"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_renderer.go github.com/katalvlaran/lvdice/render Renderer

// Renderer displays a series. It is a sink: nothing flows back to the caller
// apart from the sink's own failure.
type Renderer interface {
	Render(s Series) error
}

// Draw builds the series of kind k from d and hands it to r.
func Draw(r Renderer, d *distribution.Distribution, k Kind) error {
	s, err := SeriesOf(d, k)
	if err != nil {
		return err
	}
	if err := r.Render(s); err != nil {
		return fmt.Errorf("render %s of %s: %w", k, d.Name(), err)
	}
	return nil
}
