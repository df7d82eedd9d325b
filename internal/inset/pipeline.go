package inset

import (
	"math"

	"github.com/ironsheep/magnifier-mcp/internal/engine"
	"github.com/ironsheep/magnifier-mcp/internal/raster"
)

// Options collects the already-resolved parameters for a single-shot inset
// render. The interactive shell owns all selection/drag state; the pipeline
// is stateless and receives only final values.
type Options struct {
	// Shape selects rectangular or circular extraction. Rect is used for
	// Rectangular selections; CenterX/CenterY/Diameter for Circular ones.
	Shape    engine.Shape
	Rect     engine.Rect
	CenterX  int
	CenterY  int
	Diameter int

	// Zoom is the magnification factor applied to the extracted region.
	// Callers are responsible for range-checking it (see ClampZoom).
	Zoom   float64
	Method engine.Method

	// BorderWidth in pixels; BorderColor's alpha becomes the border ring
	// opacity.
	BorderWidth int
	BorderColor engine.Color

	// Opacity is the global compositing opacity in [0, 1].
	Opacity float64

	Preset engine.Preset
	Margin int
	Custom *engine.Position

	// DrawIndicator outlines the source region; ConnectLines ties the
	// source region to the inset. Both use LineColor/LineThickness.
	DrawIndicator bool
	ConnectLines  bool
	LineColor     engine.Color
	LineThickness float64

	// Anchor angles (radians) for circular connection lines. Both zero
	// means the defaults (left = pi, right = 0).
	LeftAngle  float64
	RightAngle float64
}

// Result reports the geometry of a completed render.
type Result struct {
	// SourceRect is the extracted region's rectangle on the source image
	// (the clamped bounding square for circular selections).
	SourceRect engine.Rect `json:"source_rect"`

	// InsetRect is the bordered inset's rectangle on the destination.
	InsetRect engine.Rect `json:"inset_rect"`

	// Position is InsetRect's top-left corner.
	Position engine.Position `json:"position"`
}

// Render runs the full pipeline against dst, which serves as both the
// sample source and the compositing destination, and mutates it in place.
//
// Stage order: extract -> resample -> border -> position -> annotate ->
// composite. Extraction errors (engine.ErrOutOfBounds,
// engine.ErrRegionTooSmall) abort before dst is touched.
func Render(dst *engine.Image, opts Options) (*Result, error) {
	reg, srcRect, err := extract(dst, opts)
	if err != nil {
		return nil, err
	}

	dstW := int(math.Round(float64(reg.Width) * opts.Zoom))
	dstH := int(math.Round(float64(reg.Height) * opts.Zoom))
	scaled := engine.ScaleRegion(reg, dstW, dstH, opts.Method)
	bordered := engine.AddBorder(scaled, opts.BorderWidth, opts.BorderColor)

	pos := engine.CalculatePosition(dst.Width, dst.Height, bordered.Width, bordered.Height,
		opts.Preset, opts.Margin, opts.Custom, engine.ClampToCanvas)

	res := &Result{
		SourceRect: srcRect,
		InsetRect: engine.Rect{
			X0: pos.X, Y0: pos.Y,
			X1: pos.X + bordered.Width, Y1: pos.Y + bordered.Height,
		},
		Position: pos,
	}

	annotate(dst, bordered.Shape, res, opts)
	engine.CompositeInset(dst, bordered, pos, opts.Opacity)
	return res, nil
}

// FinalizeOptions parameterizes compositing of a previously extracted inset
// onto a destination image. SourceRect, Shape, and Zoom normally come back
// from the metadata store attached to the extracted artifact.
type FinalizeOptions struct {
	SourceRect engine.Rect
	Shape      engine.Shape

	BorderWidth int
	BorderColor engine.Color
	Opacity     float64

	// Position places the inset without clamping: the finalize workflow
	// allows insets hanging partially or fully outside the canvas.
	Position engine.Position

	DrawIndicator bool
	ConnectLines  bool
	LineColor     engine.Color
	LineThickness float64
	LeftAngle     float64
	RightAngle    float64
}

// Finalize frames reg (an extracted, already-resampled region) and
// composites it onto dst at the given unclamped position, drawing the
// source indicator and connection lines against opts.SourceRect. The
// destination may be a different image than the one reg was extracted from.
func Finalize(dst *engine.Image, reg *engine.Region, opts FinalizeOptions) *Result {
	bordered := engine.AddBorder(reg, opts.BorderWidth, opts.BorderColor)

	pos := engine.CalculatePosition(dst.Width, dst.Height, bordered.Width, bordered.Height,
		engine.PresetCustom, 0, &opts.Position, engine.Unclamped)

	res := &Result{
		SourceRect: opts.SourceRect,
		InsetRect: engine.Rect{
			X0: pos.X, Y0: pos.Y,
			X1: pos.X + bordered.Width, Y1: pos.Y + bordered.Height,
		},
		Position: pos,
	}

	annotate(dst, bordered.Shape, res, Options{
		Shape:         opts.Shape,
		DrawIndicator: opts.DrawIndicator,
		ConnectLines:  opts.ConnectLines,
		LineColor:     opts.LineColor,
		LineThickness: opts.LineThickness,
		LeftAngle:     opts.LeftAngle,
		RightAngle:    opts.RightAngle,
	})
	engine.CompositeInset(dst, bordered, pos, opts.Opacity)
	return res
}

func extract(src *engine.Image, opts Options) (*engine.Region, engine.Rect, error) {
	switch opts.Shape {
	case engine.Circular:
		reg, square, err := engine.ExtractCircle(src, opts.CenterX, opts.CenterY, opts.Diameter)
		if err != nil {
			return nil, engine.Rect{}, err
		}
		return reg, square, nil
	default:
		reg, err := engine.ExtractRect(src, opts.Rect)
		if err != nil {
			return nil, engine.Rect{}, err
		}
		return reg, opts.Rect, nil
	}
}

// annotate draws the source indicator and connection lines. Lines go down
// first so the inset bitmap, composited afterwards, occludes their ends.
func annotate(dst *engine.Image, shape engine.Shape, res *Result, opts Options) {
	if !opts.DrawIndicator && !opts.ConnectLines {
		return
	}

	leftAngle, rightAngle := opts.LeftAngle, opts.RightAngle
	if leftAngle == 0 && rightAngle == 0 {
		leftAngle, rightAngle = raster.DefaultLeftAngle, raster.DefaultRightAngle
	}

	switch shape {
	case engine.Circular:
		srcCx := float64(res.SourceRect.X0+res.SourceRect.X1) / 2
		srcCy := float64(res.SourceRect.Y0+res.SourceRect.Y1) / 2
		srcR := float64(minDim(res.SourceRect)) / 2
		insCx := float64(res.InsetRect.X0+res.InsetRect.X1) / 2
		insCy := float64(res.InsetRect.Y0+res.InsetRect.Y1) / 2
		insR := float64(minDim(res.InsetRect)) / 2

		if opts.ConnectLines {
			raster.ConnectCircles(dst, srcCx, srcCy, srcR, insCx, insCy, insR,
				leftAngle, rightAngle, opts.LineColor, opts.LineThickness)
		}
		if opts.DrawIndicator {
			raster.StrokeRing(dst, srcCx, srcCy, srcR, opts.LineColor, opts.LineThickness)
		}
	case engine.Rectangular:
		if opts.ConnectLines {
			raster.ConnectRects(dst, res.SourceRect, res.InsetRect, opts.LineColor, opts.LineThickness)
		}
		if opts.DrawIndicator {
			raster.StrokeRect(dst, res.SourceRect, opts.LineColor, opts.LineThickness)
		}
	}
}

func minDim(r engine.Rect) int {
	if r.Width() < r.Height() {
		return r.Width()
	}
	return r.Height()
}
