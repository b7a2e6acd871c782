// softrender - Software Triangle Rasterizer
// Renders OBJ and GLB models to image files without a GPU.
//
// Modes:
//
//	lit        - Flat greyscale shading with back-face culling
//	random     - Random color per triangle
//	gradient   - Screen-position color gradient
//	wireframe  - White outline of every face
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/softrender/pkg/config"
	"github.com/taigrr/softrender/pkg/imageio"
	"github.com/taigrr/softrender/pkg/models"
	"github.com/taigrr/softrender/pkg/render"
	"github.com/taigrr/softrender/pkg/turntable"
)

var (
	configPath = flag.String("config", "", "Path to YAML or JSON config file")
	outPath    = flag.String("out", "", "Output image path (default "+config.DefaultOutput+")")
	format     = flag.String("format", "", "Output format: tga, png, webp, bmp, tiff (default from -out)")
	width      = flag.Int("width", 0, "Image width in pixels")
	height     = flag.Int("height", 0, "Image height in pixels")
	mode       = flag.String("mode", "", "Render mode: lit, random, gradient, wireframe")
	polygon    = flag.String("polygon", "", "Polygon faces: first (first triangle only) or fan")
	seed       = flag.Uint64("seed", 0, "Seed for random triangle colors")
	fit        = flag.Bool("fit", false, "Center and scale the model into the unit cube")
	frames     = flag.Int("frames", 0, "Render an N frame turntable as animated WebP")
	demo       = flag.Bool("demo", false, "Draw the scanline demo triangles instead of a model")
	preview    = flag.Bool("preview", false, "Show the result in the terminal after writing it")
	verbose    = flag.Bool("v", false, "Verbose logging")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "softrender - Software Triangle Rasterizer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: softrender [options] [model.obj|model.glb]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nWith no model argument, %s is rendered.\n", config.DefaultModel)
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	render.SetLogger(logger)

	var cfg config.Config
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	cfg.Resolve(config.Flags{
		Model:   flag.Arg(0),
		Output:  *outPath,
		Format:  *format,
		Width:   *width,
		Height:  *height,
		Mode:    *mode,
		Polygon: *polygon,
		Fit:     *fit,
		Seed:    *seed,
		Frames:  *frames,
	})
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Context for clean shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *demo {
		fb := render.NewFramebuffer(cfg.Width, cfg.Height)
		fb.Clear(render.ColorBlack)
		render.DrawScanlineDemo(fb)
		if err := writeStill(&cfg, fb.ToImage()); err != nil {
			return err
		}
		if *preview {
			return showPreview(ctx, fb)
		}
		return nil
	}

	mesh, err := models.Load(cfg.Model)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	if cfg.Fit {
		mesh.FitUnitCube()
	}
	if cfg.Rotation != ([3]float64{}) {
		mesh.Transform(cfg.Orientation())
	}
	logger.Info("loaded model",
		slog.String("name", filepath.Base(cfg.Model)),
		slog.Int("vertices", mesh.VertexCount()),
		slog.Int("faces", mesh.FaceCount()))
	lo, hi := mesh.GetBounds()
	logger.Debug("model bounds", slog.Any("min", lo), slog.Any("max", hi))

	renderMode, _ := cfg.RenderMode()
	polygonMode, _ := cfg.PolygonMode()

	if cfg.Frames > 1 {
		return runTurntable(ctx, &cfg, mesh, renderMode, polygonMode)
	}

	fb := render.NewFramebuffer(cfg.Width, cfg.Height)
	fb.Clear(render.ColorBlack)
	r := render.NewRasterizer(fb, cfg.Seed)
	r.Light = cfg.LightDir()
	r.Polygon = polygonMode

	start := time.Now()
	r.DrawMesh(mesh, renderMode)
	logger.Info("rendered",
		slog.String("mode", renderMode.String()),
		slog.Int("drawn", r.Stats.Drawn),
		slog.Int("culled", r.Stats.Culled),
		slog.Int("skipped", r.Stats.Skipped),
		slog.Int("pixels", r.Stats.Pixels),
		slog.Duration("elapsed", time.Since(start)))

	if err := writeStill(&cfg, fb.ToImage()); err != nil {
		return err
	}
	if *preview {
		return showPreview(ctx, fb)
	}
	return nil
}

func runTurntable(ctx context.Context, cfg *config.Config, mesh *models.Mesh, mode render.RenderMode, polygon render.PolygonMode) error {
	fps := max(int(time.Second/cfg.FrameDelay()), 1)
	angles := turntable.Angles(cfg.Frames, fps)

	imgs, err := turntable.Render(ctx, mesh, angles, turntable.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Mode:       mode,
		Polygon:    polygon,
		Light:      cfg.LightDir(),
		Seed:       cfg.Seed,
		Background: render.ColorBlack,
	}, os.Stderr)
	if err != nil {
		return fmt.Errorf("render turntable: %w", err)
	}

	out := cfg.Output
	if ext := filepath.Ext(out); !strings.EqualFold(ext, ".webp") {
		out = strings.TrimSuffix(out, ext) + ".webp"
		slog.Info("animations are written as WebP", slog.String("path", out))
	}
	if err := imageio.WriteAnimation(out, imgs, cfg.FrameDelay()); err != nil {
		return fmt.Errorf("write animation: %w", err)
	}
	slog.Info("wrote animation", slog.String("path", out), slog.Int("frames", len(imgs)))

	if *preview {
		return showPreview(ctx, render.FromImage(imgs[0]))
	}
	return nil
}

func writeStill(cfg *config.Config, img image.Image) error {
	f, err := cfg.OutputFormat()
	if err != nil {
		return err
	}
	if err := imageio.WriteFileAs(cfg.Output, img, f); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	slog.Info("wrote image", slog.String("path", cfg.Output), slog.String("format", string(f)))
	return nil
}

// showPreview draws fb scaled to fit the terminal and waits for a key press.
func showPreview(ctx context.Context, fb *render.Framebuffer) error {
	term := uv.DefaultTerminal()

	cols, rows, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}()

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(cols, rows)

	// Each cell holds two pixel rows.
	scale := math.Min(float64(cols)/float64(fb.Width), float64(rows*2)/float64(fb.Height))
	w := max(int(float64(fb.Width)*scale), 1)
	h := max(int(float64(fb.Height)*scale), 1)
	small := fb.Scaled(w, h)

	area := uv.Rect((cols-w)/2, 0, w, (h+1)/2)
	small.Draw(term, area)
	if err := term.Display(); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-term.Events():
			if !ok {
				return nil
			}
			if _, isKey := ev.(uv.KeyPressEvent); isKey {
				return nil
			}
		}
	}
}
