// Command tulis renders handwriting templates, checks recorded drawings
// against them and prints tracing worksheets.
//
// Usage:
//
//	tulis render -target A -dpr 2 -out ./out
//	tulis check  -strokes attempt.json -strategy all
//	tulis sheet  -targets ABCDE12345 -out sheet.pdf
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/tulis"
)

type command struct {
	name  string
	usage string
	run   func(args []string) error
}

var commands = []command{
	{"render", "write guide, overlay and mask PNGs of a target", runRender},
	{"check", "evaluate a recorded stroke file", runCheck},
	{"sheet", "write a PDF tracing worksheet", runSheet},
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("tulis: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	for _, c := range commands {
		if c.name != os.Args[1] {
			continue
		}
		if err := c.run(os.Args[2:]); err != nil {
			log.Fatal(err)
		}
		return
	}
	usage()
	os.Exit(2)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: tulis <command> [flags]")
	fmt.Fprintln(os.Stderr)
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %-8s %s\n", c.name, c.usage)
	}
}

// common holds the flags shared by every subcommand.
type common struct {
	width, height int
	dpr           float64
	verbose       bool
}

func (c *common) register(fs *flag.FlagSet) {
	fs.IntVar(&c.width, "width", tulis.DefaultWidth, "logical canvas width")
	fs.IntVar(&c.height, "height", tulis.DefaultHeight, "logical canvas height")
	fs.Float64Var(&c.dpr, "dpr", 1, "device pixel ratio")
	c.registerVerbose(fs)
}

// registerVerbose adds only -v, for subcommands without a canvas.
func (c *common) registerVerbose(fs *flag.FlagSet) {
	fs.BoolVar(&c.verbose, "v", false, "debug logging")
}

// setup installs the logger.
func (c *common) setup() {
	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	tulis.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func (c *common) scale() (tulis.Scale, error) {
	return tulis.NewScale(c.width, c.height, c.dpr)
}
