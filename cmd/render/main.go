package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"ray-kernel/internal/canvas"
	"ray-kernel/internal/config"
	"ray-kernel/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to scene config JSON file")
	width := flag.Int("width", 0, "Output width in pixels (default: 200)")
	height := flag.Int("height", 0, "Output height in pixels (default: 200)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	supersample := flag.Int("supersample", 0, "Render at N× size and downscale (default: 1)")
	output := flag.String("output", "", "Output file: .ppm, .png, .webp or .tga (default: output.ppm)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Output:      *output,
		Width:       *width,
		Height:      *height,
		Supersample: *supersample,
		Workers:     *workers,
	})

	sc, err := cfg.Scene()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building scene: %v\n", err)
		os.Exit(1)
	}

	renderW, renderH := cfg.Width*cfg.Supersample, cfg.Height*cfg.Supersample

	fmt.Printf("Sphere renderer → %s\n", cfg.Output)
	fmt.Printf("Spheres: %d, Size: %dx%d (x%d), Workers: %d\n",
		len(sc.Objects), cfg.Width, cfg.Height, cfg.Supersample, cfg.Workers)
	fmt.Println("------------------------------------------------------------")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()

	cv, err := scene.Render(ctx, sc, cfg.EyePoint(), cfg.SceneWall(), scene.Options{
		Width:    renderW,
		Height:   renderH,
		Workers:  cfg.Workers,
		Progress: os.Stdout,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering: %v\n", err)
		os.Exit(1)
	}

	img := cv.Image()
	if cfg.Supersample > 1 {
		img = canvas.Downsample(img, cfg.Width, cfg.Height)
	}

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	if err := canvas.Save(cfg.Output, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Output: %s\n", cfg.Output)
}
