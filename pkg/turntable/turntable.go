// Package turntable renders a mesh spinning once around the Y axis.
package turntable

import (
	"context"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/schollz/progressbar/v3"

	"github.com/taigrr/softrender/pkg/math3d"
	"github.com/taigrr/softrender/pkg/models"
	"github.com/taigrr/softrender/pkg/render"
)

// settle is the spring's angular frequency times the clip duration. At 8 a
// critically damped spring is within 0.3% of its target by the last frame.
const settle = 8.0

// Angles returns one yaw angle per frame easing from 0 to a full turn. The
// motion follows a critically damped spring, so it starts fast and settles
// without overshoot; the final frame is exactly 2π.
func Angles(frames, fps int) []float64 {
	if frames <= 0 {
		return nil
	}
	angles := make([]float64, frames)
	if frames == 1 {
		return angles
	}

	spring := harmonica.NewSpring(harmonica.FPS(fps), settle*float64(fps)/float64(frames), 1.0)
	var pos, vel float64
	for i := 1; i < frames; i++ {
		pos, vel = spring.Update(pos, vel, 2*math.Pi)
		angles[i] = pos
	}
	angles[frames-1] = 2 * math.Pi
	return angles
}

// Options configures frame rendering.
type Options struct {
	Width, Height int
	Mode          render.RenderMode
	Polygon       render.PolygonMode
	Light         math3d.Vec3 // Zero means render.DefaultLight
	Seed          uint64
	Background    render.Color
}

// Render draws mesh once per angle and returns the frames in order.
// Progress is reported to progress; pass nil to render silently.
func Render(ctx context.Context, mesh *models.Mesh, angles []float64, opts Options, progress io.Writer) ([]image.Image, error) {
	if progress == nil {
		progress = io.Discard
	}
	bar := progressbar.NewOptions(len(angles),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("rendering frames"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	fb := render.NewFramebuffer(opts.Width, opts.Height)
	r := render.NewRasterizer(fb, opts.Seed)
	r.Polygon = opts.Polygon
	if opts.Light != (math3d.Vec3{}) {
		r.Light = opts.Light
	}

	frames := make([]image.Image, 0, len(angles))
	for i, angle := range angles {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}

		posed := mesh.Clone()
		posed.Transform(math3d.RotateY(angle))

		fb.Clear(opts.Background)
		r.BeginFrame()
		r.DrawMesh(posed, opts.Mode)
		frames = append(frames, fb.ToImage())

		render.Logger().Debug("frame rendered", "frame", i, "angle", angle, "pixels", r.Stats.Pixels)
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	return frames, nil
}
