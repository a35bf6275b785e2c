// Package tulis captures freehand handwriting and decides whether it
// matches a target letter or digit.
//
// # Overview
//
// tulis is the checking core of a writing game for children. A child
// traces a character on a canvas; pointer events are recorded as strokes
// and painted onto a device-resolution surface. On "check", the ink is
// compared against a template of the target glyph and a Verdict comes back.
//
// # Quick Start
//
//	import "github.com/gogpu/tulis"
//
//	e := tulis.New(tulis.WithSize(300, 300), tulis.WithDPR(2))
//	if err := e.SetTarget("A"); err != nil {
//	    return err
//	}
//
//	// Feed pointer events from the UI layer.
//	e.Begin(tulis.MouseAt(120, 40))
//	e.Extend(tulis.MouseAt(60, 250))
//	e.End()
//
//	v := e.Evaluate()
//	fmt.Println(v.Matched, v.Confidence)
//
// # Architecture
//
// The package is organized into:
//   - Capture: Capture, Surface, StrokeSequence, PointerEvent
//   - Templates: Rasterizer, TemplateMask (glyph outlines from package text)
//   - Evaluation: Evaluator with the Overlap, Shape and Density strategies
//     and Chain to combine them
//   - Engine: the three pieces behind one mutex, built from one Scale
//
// # Coordinate System
//
// Points are in logical (CSS) pixels with the origin at the top-left and
// y growing down. Scale maps them to device pixels. The surface and the
// template mask are built from the same Scale, so mask indices address
// surface pixels directly.
//
// # Strategies
//
// Overlap is the default: the share of template mask pixels covered by
// ink must reach 8%. Shape checks geometric predicates of the point
// sequence against a table of every ASCII digit and letter. Density only
// checks stroke count and point density and is meant for lenient
// feedback.
//
// # Logging
//
// tulis is silent by default. See SetLogger.
package tulis
