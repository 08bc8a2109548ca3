package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"

	"wallmap/internal/export"
	"wallmap/internal/geom"
	"wallmap/internal/svg"
	"wallmap/internal/tui"
)

func main() {
	minStroke := flag.Float64("min-stroke", 0.5, "minimum stroke-width for a path to count as a wall (strict)")
	minSeg := flag.Float64("min-seg", 10, "minimum length of the first path segment")
	scale := flag.Float64("scale", 100, "scale factor applied to extracted coordinates")
	pngOut := flag.String("png", "", "render to this PNG file instead of opening the viewer")
	pngWidth := flag.Int("width", 800, "PNG width in pixels (with -png)")
	flag.Parse()

	opts := svg.Options{StrokeWidthMin: *minStroke, SegmentLengthMin: *minSeg}

	if *pngOut != "" {
		path := flag.Arg(0)
		if path == "" {
			fmt.Fprintln(os.Stderr, "usage: wallmap -png out.png plan.svg")
			os.Exit(2)
		}
		data, err := geom.Load(path, opts, *scale)
		if err != nil {
			color.Red("error parsing SVG file: %v", err)
			os.Exit(1)
		}
		report(data)
		if err := export.WritePNG(*pngOut, data, *pngWidth); err != nil {
			log.Fatal(err)
		}
		fmt.Println("wrote", *pngOut)
		return
	}

	var m tea.Model
	if flag.Arg(0) != "" {
		m = tui.NewWithPath(flag.Arg(0), opts, *scale)
	} else {
		m = tui.New(opts, *scale)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}

// report prints the detected wall count and a sample of up to three raw
// records.
func report(data geom.Data) {
	color.Cyan("detected %d potential wall paths after filtering", len(data.Walls))
	for _, w := range data.Sample(3) {
		id := w.ID
		if id == "" {
			id = "(none)"
		}
		fmt.Printf("  id=%s stroke-width=%g d=%q style=%q\n", id, w.StrokeWidth, truncate(w.D, 60), truncate(w.Style, 60))
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
