// Command nisconfig prints the NIS uniform for a render target and can write
// the uniform and coefficient tables as binary blobs.
//
// Usage:
//
//	nisconfig -width 3840 -height 2160 -ratio 1.5 -sharpness 0.4 -mode pq
//	nisconfig -sharpen -uniform-out nis_config.bin -coef-out coef
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/gogpu/nis"
	"github.com/gogpu/nis/coef"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	defaults := nis.DefaultSettings()

	fs := flag.NewFlagSet("nisconfig", flag.ContinueOnError)
	var (
		width      = fs.Uint("width", 1920, "render target width")
		height     = fs.Uint("height", 1080, "render target height")
		ratio      = fs.Float64("ratio", float64(defaults.UpscaleRatio), "upscale ratio in [1, 2]")
		sharpness  = fs.Float64("sharpness", float64(defaults.Sharpness), "sharpness in [0, 1]")
		mode       = fs.String("mode", defaults.HDRMode.String(), "HDR mode: none, linear or pq")
		sharpen    = fs.Bool("sharpen", false, "derive the sharpen-only pass")
		uniformOut = fs.String("uniform-out", "", "write the 112-byte uniform to this file")
		coefOut    = fs.String("coef-out", "", "write packed coefficient tables into this directory")
		verbose    = fs.Bool("v", false, "log debug output to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		nis.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	hdr, err := nis.ParseHDRMode(*mode)
	if err != nil {
		return err
	}
	s := nis.Settings{
		Sharpness:    float32(*sharpness),
		HDRMode:      hdr,
		UpscaleRatio: float32(*ratio),
	}
	if *sharpen {
		s.UpscaleRatio = 1
	}
	if err := s.Validate(); err != nil {
		return err
	}

	if *width > math.MaxUint32 || *height > math.MaxUint32 {
		return fmt.Errorf("target %dx%d too large", *width, *height)
	}
	target := nis.Extent{Width: uint32(*width), Height: uint32(*height)}

	var cfg nis.Config
	if *sharpen {
		c, err := nis.DeriveSharpen(s.Sharpness, s.SharpenGeometry(target), s.HDRMode)
		if err != nil {
			return err
		}
		cfg = c.Config
	} else {
		c, err := nis.DeriveScale(s.Sharpness, s.ScaleGeometry(target), s.HDRMode)
		if err != nil {
			return err
		}
		cfg = c.Config
	}

	in := cfg.InputViewport()
	fmt.Fprintf(stdout, "# %s %dx%d -> %dx%d, sharpness %g\n",
		s.HDRMode, in.Width, in.Height, target.Width, target.Height, s.Sharpness)
	printConfig(stdout, &cfg)

	if *uniformOut != "" {
		if err := os.WriteFile(*uniformOut, cfg.Marshal(), 0o644); err != nil {
			return err
		}
		log.Printf("Uniform saved to %s (%d bytes)", *uniformOut, nis.UniformSize)
	}
	if *coefOut != "" {
		if err := writeTables(*coefOut); err != nil {
			return err
		}
	}
	return nil
}

func printConfig(w io.Writer, cfg *nis.Config) {
	words := cfg.Words()
	for i, f := range nis.UniformLayout {
		if f.Unsigned {
			fmt.Fprintf(w, "%-24s %d\n", f.Name, words[i])
			continue
		}
		fmt.Fprintf(w, "%-24s %g\n", f.Name, math.Float32frombits(words[i]))
	}
}

func writeTables(dir string) error {
	if err := coef.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, k := range coef.Kinds {
		m := coef.Table(k)
		name := filepath.Join(dir, "coef_"+k.String()+".bin")
		if err := os.WriteFile(name, coef.Pack(&m), 0o644); err != nil {
			return err
		}
		log.Printf("Coefficients saved to %s (%d bytes)", name, coef.ImageSize)
	}
	return nil
}
