package main

import (
	"flag"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/gogpu/tulis"
	"github.com/gogpu/tulis/text"
)

// Worksheet geometry in millimetres.
const (
	sheetMargin = 15.0
	sheetCell   = 45.0
	sheetGlyph  = 34.0
	sheetLine   = 0.8
)

// sheetFlags declares the sheet flags. The sheet is laid out in
// millimetres, so there are no canvas flags.
func sheetFlags(c *common) (fs *flag.FlagSet, targets, out *string) {
	fs = flag.NewFlagSet("sheet", flag.ExitOnError)
	c.registerVerbose(fs)
	targets = fs.String("targets", "", "characters to practice (default: the built-in set)")
	out = fs.String("out", "sheet.pdf", "output PDF")
	return fs, targets, out
}

func runSheet(args []string) error {
	var c common
	fs, targets, out := sheetFlags(&c)
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.setup()

	var list []tulis.Target
	if *targets == "" {
		list = tulis.DefaultTargets
	}
	for _, r := range *targets {
		t, err := tulis.ParseTarget(string(r))
		if err != nil {
			return err
		}
		list = append(list, t)
	}

	if err := writeSheet(*out, text.DefaultSource(), list); err != nil {
		return err
	}
	fmt.Println(*out)
	return nil
}

// writeSheet lays the targets out on A4 pages as dashed outlines in a
// grid, one target per cell.
func writeSheet(path string, src *text.FontSource, targets []tulis.Target) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(sheetMargin, sheetMargin, sheetMargin)
	pdf.SetAutoPageBreak(false, sheetMargin)

	pageW, pageH := pdf.GetPageSize()
	cols := int((pageW - 2*sheetMargin) / sheetCell)
	rows := int((pageH - 2*sheetMargin) / sheetCell)
	perPage := cols * rows

	for i, t := range targets {
		if i%perPage == 0 {
			pdf.AddPage()
		}
		slot := i % perPage
		x := sheetMargin + float64(slot%cols)*sheetCell
		y := sheetMargin + float64(slot/cols)*sheetCell

		pdf.SetDashPattern(nil, 0)
		pdf.SetDrawColor(0xe0, 0xe0, 0xe0)
		pdf.SetLineWidth(0.2)
		pdf.Rect(x, y, sheetCell, sheetCell, "D")

		o, err := src.Outline(t.Rune(), sheetGlyph)
		if err != nil {
			return fmt.Errorf("sheet: %q: %w", t.String(), err)
		}
		gx, gy := o.Bounds.Center()
		o = o.Transform(1, x+sheetCell/2-gx, y+sheetCell/2-gy)

		pdf.SetDrawColor(0xd0, 0xd0, 0xd0)
		pdf.SetLineWidth(sheetLine)
		pdf.SetDashPattern([]float64{2, 3}, 0)
		tracePath(pdf, o)
	}
	return pdf.OutputFileAndClose(path)
}

func tracePath(pdf *gofpdf.Fpdf, o *text.GlyphOutline) {
	open := false
	for _, s := range o.Segments {
		p := s.Points
		switch s.Op {
		case text.OutlineOpMoveTo:
			if open {
				pdf.ClosePath()
			}
			pdf.MoveTo(p[0].X, p[0].Y)
			open = true
		case text.OutlineOpLineTo:
			pdf.LineTo(p[0].X, p[0].Y)
		case text.OutlineOpQuadTo:
			pdf.CurveTo(p[0].X, p[0].Y, p[1].X, p[1].Y)
		case text.OutlineOpCubicTo:
			pdf.CurveBezierCubicTo(p[0].X, p[0].Y, p[1].X, p[1].Y, p[2].X, p[2].Y)
		}
	}
	if open {
		pdf.ClosePath()
	}
	pdf.DrawPath("D")
}
