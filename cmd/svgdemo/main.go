// Command svgdemo demonstrates the svg vector graphics recorder.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/gogpu/svg"
	"github.com/gogpu/svg/fonts"
	"github.com/gogpu/svg/recording"
	"github.com/gogpu/svg/recording/backends/svgdoc"
)

func main() {
	var (
		width      = flag.Float64("width", 800, "canvas width")
		height     = flag.Float64("height", 600, "canvas height")
		output     = flag.String("output", "demo.svg", "output file")
		config     = flag.String("config", "", "TOML or YAML document configuration")
		textShapes = flag.Bool("text-shapes", false, "write text as glyph outlines")
	)
	flag.Parse()

	var opts []svg.Option
	if *config != "" {
		cfg, err := svg.LoadConfig(*config)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if opts, err = cfg.Options(); err != nil {
			log.Fatalf("Invalid config: %v", err)
		}
	}
	face := fonts.GoRegular()
	opts = append(opts, svg.WithFontMetrics(face))
	if *textShapes {
		opts = append(opts, svg.WithGlyphOutliner(face), svg.WithTextAsShapes(true))
	}

	rec := recording.NewRecorder(*width, *height)
	drawGradientBackground(rec, *width, *height)
	drawShapesDemo(rec)
	drawTransformDemo(rec)
	drawPathDemo(rec)
	drawTextDemo(rec, *width)

	backend, err := recording.NewBackend("svg", opts...)
	if err != nil {
		log.Fatalf("Failed to create backend: %v", err)
	}
	if err := rec.FinishRecording().Playback(backend); err != nil {
		log.Fatalf("Failed to play back: %v", err)
	}
	if err := backend.(recording.FileBackend).SaveToFile(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	if err := writeImages(backend.(*svgdoc.Backend).Document(), filepath.Dir(*output)); err != nil {
		log.Fatalf("Failed to save images: %v", err)
	}

	log.Printf("Demo saved to %s (%gx%g)\n", *output, *width, *height)
}

// writeImages stores externally referenced images next to the document.
func writeImages(doc *svg.Document, dir string) error {
	refs := doc.ImageReferences()
	if len(refs) == 0 {
		return nil
	}
	enc := doc.ImageEncoder()
	for _, ref := range refs {
		f, err := os.Create(filepath.Join(dir, ref.Name))
		if err != nil {
			return err
		}
		if err := enc.Encode(f, ref.Image); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

func drawGradientBackground(rec *recording.Recorder, w, h float64) {
	rec.SetPaint(svg.NewLinearGradient(0, 0, 0, h).
		AddColorStop(0, svg.RGB(0.1, 0.2, 0.4)).
		AddColorStop(1, svg.RGB(0.5, 0.5, 0.6)))
	_ = rec.FillRectangle(0, 0, w, h)
}

func drawShapesDemo(rec *recording.Recorder) {
	rec.BeginGroup("shapes")
	defer rec.EndGroup()

	rec.SetRGBA(1, 0.3, 0.3, 0.8)
	_ = rec.FillCircle(150, 150, 60)

	rec.SetRGBA(0.3, 1, 0.3, 0.8)
	_ = rec.FillCircle(200, 150, 60)

	rec.SetRGBA(0.3, 0.3, 1, 0.8)
	_ = rec.FillCircle(175, 200, 60)

	rec.SetRGB(1, 0.8, 0)
	_ = rec.Fill(svg.RoundedRect(350, 100, 120, 80, 15))

	rec.SetRGB(1, 1, 1)
	_ = rec.SetLineWidth(4)
	_ = rec.SetDash(12, 6)
	_ = rec.DrawRectangle(350, 100, 120, 80)
	_ = rec.SetDash()
}

func drawTransformDemo(rec *recording.Recorder) {
	centerX, centerY := 600.0, 150.0

	for i := range 8 {
		rec.Save()
		rec.Translate(centerX, centerY)
		rec.Rotate(float64(i) * math.Pi / 4)
		rec.SetPaint(svg.NewRadialGradient(0, 0, 45).
			AddColorStop(0, svg.White).
			AddColorStop(1, svg.RGB(0.2+float64(i)*0.1, 0.4, 0.8)))
		_ = rec.FillRectangle(-30, -30, 60, 60)
		rec.Restore()
	}
}

func drawPathDemo(rec *recording.Recorder) {
	rec.Save()
	defer rec.Restore()
	rec.Translate(150, 400)

	rec.SetRGB(1, 0.5, 0)
	_ = rec.SetLineWidth(6)
	_ = rec.SetLineCap(svg.LineCapRound)
	rec.MoveTo(0, 0)
	rec.CubicTo(50, -50, 100, 50, 150, 0)
	rec.CubicTo(200, -30, 250, 30, 300, 0)
	_ = rec.StrokePath()

	// Star clipped to a circle, with a checker image underneath.
	rec.Translate(400, 0)
	rec.Clip(svg.Circle(0, 0, 50))
	_ = rec.DrawImageScaled(checker(8), -50, -50, 100, 100)

	rec.SetRGB(1, 1, 0)
	const points = 5
	outerR, innerR := 60.0, 30.0
	for i := range points * 2 {
		angle := float64(i)*math.Pi/points - math.Pi/2
		r := outerR
		if i%2 == 1 {
			r = innerR
		}
		x, y := r*math.Cos(angle), r*math.Sin(angle)
		if i == 0 {
			rec.MoveTo(x, y)
		} else {
			rec.LineTo(x, y)
		}
	}
	rec.ClosePath()
	rec.SetFillRule(svg.FillEvenOdd)
	_ = rec.FillPath()
}

func drawTextDemo(rec *recording.Recorder, w float64) {
	rec.SetRGB(1, 1, 1)
	rec.SetFont(svg.Font{Family: "Go", Size: 32})
	rec.DrawStringAnchored("svg demo", w/2, 540, 0.5, 0)
}

func checker(n int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, n, n))
	for y := range n {
		for x := range n {
			c := color.NRGBA{R: 40, G: 40, B: 40, A: 255}
			if (x+y)%2 == 0 {
				c = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
