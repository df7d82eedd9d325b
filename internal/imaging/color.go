package imaging

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/magnifier-mcp/internal/engine"
)

// ParseColor converts a "#RRGGBB" hex string plus a separate opacity in
// [0, 1] into an engine color. An empty string falls back to def.
func ParseColor(hex string, opacity float64, def engine.Color) (engine.Color, error) {
	if hex == "" {
		return def.WithAlpha(opacity), nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return engine.Color{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return engine.NewColor(c.R, c.G, c.B).WithAlpha(opacity), nil
}
