package scene

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"ray-kernel/internal/canvas"
	"ray-kernel/internal/mathutil"
	"ray-kernel/internal/ray"
)

// Wall is the plane z = Z that canvas pixels are projected onto, centered on
// the z axis.
type Wall struct {
	Z      float32
	Width  float32
	Height float32
}

// Options controls a Render call.
type Options struct {
	Width    int
	Height   int
	Workers  int       // <= 0 means NumCPU
	Progress io.Writer // nil disables progress lines
	Interval time.Duration
}

// PixelRay returns the ray from eye through the wall point under pixel (x, y).
// Pixel (0, 0) is the top-left corner of the wall.
func PixelRay(eye mathutil.Tuple, wall Wall, width, height, x, y int) ray.Ray {
	worldX := -wall.Width/2 + wall.Width/float32(width)*float32(x)
	worldY := wall.Height/2 - wall.Height/float32(height)*float32(y)
	target := mathutil.Point(worldX, worldY, wall.Z)
	return ray.New(eye, target.Sub(eye).Unit())
}

// Render paints the scene one row at a time using a worker pool. It stops
// dispatching rows when ctx is done and returns ctx.Err().
func Render(ctx context.Context, sc *Scene, eye mathutil.Tuple, wall Wall, opts Options) (*canvas.Canvas, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("scene: invalid canvas size %dx%d", opts.Width, opts.Height)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = 2 * time.Second
	}

	cv := canvas.New(opts.Width, opts.Height)
	var processed atomic.Int64
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if opts.Progress != nil {
		go func() {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						rate := float64(p) / time.Since(start).Seconds()
						fmt.Fprintf(opts.Progress, "  [%d/%d] %.1f rows/sec\n", p, opts.Height, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	rowChan := make(chan int, workers*2)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rowChan {
				for x := 0; x < opts.Width; x++ {
					cv.Set(x, y, sc.ColorAt(PixelRay(eye, wall, opts.Width, opts.Height, x, y)))
				}
				processed.Add(1)
			}
		}()
	}

	// Send work
	var err error
send:
	for y := 0; y < opts.Height; y++ {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break send
		case rowChan <- y:
		}
	}
	close(rowChan)

	wg.Wait()
	close(done)

	if err != nil {
		return nil, err
	}
	return cv, nil
}
