package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/tulis"
)

// strokeFile is a recorded drawing attempt. Coordinates are logical
// pixels of a canvas of Width×Height.
type strokeFile struct {
	Target  string         `json:"target"`
	Width   int            `json:"width,omitempty"`
	Height  int            `json:"height,omitempty"`
	DPR     float64        `json:"dpr,omitempty"`
	Strokes [][][2]float64 `json:"strokes"`
}

type verdictJSON struct {
	Target     string  `json:"target"`
	Strategy   string  `json:"strategy"`
	Matched    bool    `json:"matched"`
	Confidence float64 `json:"confidence"`
	Ratio      float64 `json:"ratio"`
	Attempt    string  `json:"attempt"`
}

func runCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var c common
	c.register(fs)
	path := fs.String("strokes", "", "stroke file (JSON); - reads stdin")
	target := fs.String("target", "", "override the file's target")
	strategy := fs.String("strategy", "overlap", "overlap, shape, density or all")
	asJSON := fs.Bool("json", false, "print the verdict as JSON")
	display := fs.String("png", "", "also write the drawing to this PNG")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.setup()

	if *path == "" {
		return errors.New("check: -strokes is required")
	}
	sf, err := readStrokes(*path)
	if err != nil {
		return err
	}
	if *target != "" {
		sf.Target = *target
	}
	if sf.Width > 0 && sf.Height > 0 {
		c.width, c.height = sf.Width, sf.Height
	}
	if sf.DPR > 0 {
		c.dpr = sf.DPR
	}
	ev, ok := tulis.EvaluatorByName(*strategy)
	if !ok {
		return fmt.Errorf("check: unknown strategy %q", *strategy)
	}

	e, err := replay(sf, c, ev)
	if err != nil {
		return err
	}
	v := e.Evaluate()

	if *display != "" {
		if err := writePNG(*display, e.Display()); err != nil {
			return err
		}
	}
	return printVerdict(os.Stdout, v, *asJSON)
}

func readStrokes(path string) (*strokeFile, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		r = f
	}
	var sf strokeFile
	if err := json.NewDecoder(r).Decode(&sf); err != nil {
		return nil, fmt.Errorf("check: decode %s: %w", path, err)
	}
	return &sf, nil
}

// replay feeds the recorded strokes through an engine as mouse events.
func replay(sf *strokeFile, c common, ev tulis.Evaluator) (*tulis.Engine, error) {
	e := tulis.New(
		tulis.WithSize(c.width, c.height),
		tulis.WithDPR(c.dpr),
		tulis.WithEvaluator(ev),
	)
	if err := e.SetTarget(sf.Target); err != nil {
		return nil, err
	}
	for _, st := range sf.Strokes {
		if len(st) == 0 {
			continue
		}
		e.Begin(tulis.MouseAt(st[0][0], st[0][1]))
		for _, p := range st[1:] {
			e.Extend(tulis.MouseAt(p[0], p[1]))
		}
		e.End()
	}
	return e, nil
}

func printVerdict(w io.Writer, v tulis.Verdict, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(verdictJSON{
			Target:     v.Target.String(),
			Strategy:   v.Strategy,
			Matched:    v.Matched,
			Confidence: v.Confidence,
			Ratio:      v.Ratio,
			Attempt:    v.Attempt.String(),
		})
	}
	_, err := fmt.Fprintf(w, "target=%s strategy=%s matched=%t confidence=%.3f ratio=%.3f\n",
		v.Target, v.Strategy, v.Matched, v.Confidence, v.Ratio)
	return err
}
