package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/gogpu/tulis"
)

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	var c common
	c.register(fs)
	target := fs.String("target", "A", "letter or digit")
	out := fs.String("out", ".", "output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.setup()

	t, err := tulis.ParseTarget(*target)
	if err != nil {
		return err
	}
	scale, err := c.scale()
	if err != nil {
		return err
	}
	files, err := renderTarget(tulis.NewRasterizer(nil, 0), t, scale, *out)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Println(f)
	}
	return nil
}

// renderTarget writes <target>-guide.png, <target>-overlay.png and
// <target>-mask.png into dir and returns their paths.
func renderTarget(r *tulis.Rasterizer, t tulis.Target, scale tulis.Scale, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	w, h := scale.DeviceSize()
	base := fmt.Sprintf("%U", t.Rune())

	guide := image.NewRGBA(image.Rect(0, 0, w, h))
	if err := r.RenderGuide(guide, t, scale); err != nil {
		return nil, err
	}
	overlay, err := r.Overlay(t, scale)
	if err != nil {
		return nil, err
	}
	mask, err := r.RenderMask(t, scale)
	if err != nil {
		return nil, err
	}

	images := []struct {
		suffix string
		img    image.Image
	}{
		{"guide", onWhite(guide)},
		{"overlay", onWhite(overlay)},
		{"mask", maskOnWhite(mask.ToImage())},
	}
	paths := make([]string, 0, len(images))
	for _, im := range images {
		p := filepath.Join(dir, base+"-"+im.suffix+".png")
		if err := writePNG(p, im.img); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func onWhite(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Rect)
	draw.Draw(dst, dst.Rect, image.White, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Rect, src, src.Rect.Min, draw.Over)
	return dst
}

// maskOnWhite paints black through m onto white.
func maskOnWhite(m *image.Alpha) *image.RGBA {
	dst := image.NewRGBA(m.Rect)
	draw.Draw(dst, dst.Rect, image.White, image.Point{}, draw.Src)
	draw.DrawMask(dst, dst.Rect, image.Black, image.Point{}, m, m.Rect.Min, draw.Over)
	return dst
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
