// Package shapegen provides a portable 2-D polygonal shape generator and
// software rasterizer.
//
// # Overview
//
// shapegen takes vector path descriptions (lines, Bézier curves, elliptic
// arcs) expressed in a 16.16 fixed-point coordinate space and produces pixel
// output through a pluggable renderer. The pipeline is strictly one-way:
//
//	Path -> flatten/stroke expand -> edges -> normalize -> feeder -> renderer -> Pixmap
//
// # Quick start
//
//	p := shapegen.NewPath()
//	p.Rectangle(shapegen.Rect{X: 10, Y: 20, W: 30, H: 40})
//
//	pm := pixbuf.New(256, 256)
//	r := raster.NewSimple(pm)
//	r.SetColor(paint.RGBA{R: 255, A: 255}.Packed())
//	p.Fill(r, shapegen.FillRuleNonZero)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Path, Rect, fill-rule and stroke-style types (this package)
//   - internal/fixed: 16.16 fixed-point arithmetic
//   - internal/path: point/figure-header storage, curve flattening, ellipse generation
//   - internal/stroke: stroke-to-fill expansion, joins, caps, dashing
//   - internal/edge: edge pool, edge manager, clip stack
//   - internal/feed: shape feeder (rectangles or antialiased subpixel spans)
//   - internal/raster: simple and 4x8 supersampled antialiased renderers
//   - paint: solid, tiled-pattern, and gradient paint generators
//   - pixbuf: 32bpp BGRA pixel buffer utilities
//   - frontend/bmpimage: BMP image loading for patterns, built on golang.org/x/image/bmp
//
// # Coordinate system
//
// Public coordinates are signed integers; a caller may declare that the
// integers carry 16.N fixed-point fractional bits. Internally everything
// is normalized to 16.16 fixed point. Origin (0,0) is at the top-left, X
// increases right, Y increases down.
package shapegen
