package engine

import "strings"

// Preset names a canonical inset placement. Unrecognized names resolve to
// PresetTopLeft.
type Preset int

const (
	PresetTopLeft Preset = iota
	PresetTopRight
	PresetBottomLeft
	PresetBottomRight

	// PresetCustom places the inset at caller-supplied coordinates
	// (defaulting to margin, margin when absent).
	PresetCustom
)

// String returns the lowercase tag used in tool parameters.
func (p Preset) String() string {
	switch p {
	case PresetTopRight:
		return "top-right"
	case PresetBottomLeft:
		return "bottom-left"
	case PresetBottomRight:
		return "bottom-right"
	case PresetCustom:
		return "custom"
	}
	return "top-left"
}

// ParsePreset maps a placement name to its Preset. Unknown names fall back
// to top-left, mirroring the default placement.
func ParsePreset(name string) Preset {
	switch strings.ToLower(name) {
	case "top-right":
		return PresetTopRight
	case "bottom-left":
		return PresetBottomLeft
	case "bottom-right":
		return PresetBottomRight
	case "custom":
		return PresetCustom
	}
	return PresetTopLeft
}

// ClampMode controls whether CalculatePosition forces the inset onto the
// image canvas.
type ClampMode int

const (
	// ClampToCanvas clamps both axes into [0, imgDim-insDim] after preset
	// resolution, so the inset never sits at negative coordinates or past
	// the far edge. For insets larger than imgDim-margin this can force
	// overlap with the margin. Used by the single-shot render path.
	ClampToCanvas ClampMode = iota

	// Unclamped skips the canvas clamp, allowing insets to hang partially
	// or fully outside the image. Compositing clips against the
	// destination, so off-canvas portions are simply not drawn. Used by
	// the finalize workflow.
	Unclamped
)

// CalculatePosition resolves the top-left placement of an inset of
// insW x insH on an image of imgW x imgH.
//
// Corner presets offset the inset from the matching image corner by margin.
// PresetCustom uses custom when non-nil, otherwise (margin, margin). With
// ClampToCanvas the resolved position is clamped into [0, imgDim-insDim] on
// each axis.
func CalculatePosition(imgW, imgH, insW, insH int, preset Preset, margin int, custom *Position, mode ClampMode) Position {
	var pos Position
	switch preset {
	case PresetTopRight:
		pos = Position{X: imgW - insW - margin, Y: margin}
	case PresetBottomLeft:
		pos = Position{X: margin, Y: imgH - insH - margin}
	case PresetBottomRight:
		pos = Position{X: imgW - insW - margin, Y: imgH - insH - margin}
	case PresetCustom:
		if custom != nil {
			pos = *custom
		} else {
			pos = Position{X: margin, Y: margin}
		}
	default:
		pos = Position{X: margin, Y: margin}
	}

	if mode == ClampToCanvas {
		pos.X = clampInt(pos.X, 0, maxInt(0, imgW-insW))
		pos.Y = clampInt(pos.Y, 0, maxInt(0, imgH-insH))
	}
	return pos
}
