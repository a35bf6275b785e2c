// Package text loads fonts and extracts glyph outlines for the template
// rasterizer.
//
// The package follows a separation of concerns:
//
//   - FontSource: parsed font, shared across the application
//   - GlyphOutline: vector outline of one rune at one pixel size
//   - Classify: coarse category of a rune (digit, upper, lower)
//
// Two font backends are used side by side. Character coverage is looked
// up in the cmap through github.com/go-text/typesetting, and outlines
// are loaded through golang.org/x/image/font/sfnt, whose segments are
// already in a y-down pixel space.
//
// # Example usage
//
//	src := text.DefaultSource() // embedded Go Bold
//	if !src.HasGlyph('A') {
//	    return text.ErrGlyphNotFound
//	}
//	outline, err := src.Outline('A', 160)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(outline.Bounds.Width(), outline.Bounds.Height())
package text
