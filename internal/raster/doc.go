// Package raster strokes paths onto image buffers.
//
// It wraps the rasterx stroker and dasher behind a small API that takes
// device-space coordinates in float64 and a Style. Every call is
// self-contained: a scanner is created for the dirty rectangle of the
// path, the outline is expanded, drawn with source-over compositing and
// discarded.
//
// # Caps and Joins
//
// All strokes use round caps, round gaps and round joins. Handwriting ink
// and glyph outlines both look wrong with miters, and round caps make a
// single-point stroke render as a dot.
//
// # Usage
//
//	st := raster.Style{Width: 16, Color: color.Black}
//	raster.StrokePolyline(img, []raster.Vec{{X: 10, Y: 10}, {X: 90, Y: 40}}, st)
//
//	guide := raster.Style{Width: 8, Color: grey, Dashes: []float64{16, 24}}
//	raster.StrokePath(img, segments, guide)
package raster
