package cmd

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/nfnt/resize"
	"github.com/spf13/cobra"

	"github.com/jpfielding/jpegfx/pkg/compress/jpegsim"
)

// NewCompressCmd creates the compress cobra command
func NewCompressCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compress",
		Short: "Apply JPEG compression artifacts to an image",
		Long:  "Reads a PNG or JPEG image, degrades it through the in-memory JPEG pipeline at the given strength, and writes the result as PNG.",
		RunE: func(cmd *cobra.Command, args []string) error {
			inPath, _ := cmd.Flags().GetString("in")
			outPath, _ := cmd.Flags().GetString("out")
			strength, _ := cmd.Flags().GetFloat64("strength")
			scale, _ := cmd.Flags().GetFloat64("scale")

			if inPath == "" && len(args) > 0 {
				inPath = args[0]
			}
			if inPath == "" {
				return fmt.Errorf("input path is required. Use --in flag or provide as argument")
			}

			return runCompress(ctx, inPath, outPath, strength, scale)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("in", "i", "", "input image path (PNG or JPEG), - for stdin")
	pf.StringP("out", "o", "-", "output PNG path, - for stdout")
	pf.Float64P("strength", "s", 0.5, "compression strength, 0 (near-lossless) to 1 (heavy loss)")
	pf.Float64("scale", 1, "scale factor applied to the input before degrading")

	return cmd
}

func runCompress(ctx context.Context, inPath, outPath string, strength, scale float64) error {
	var in io.Reader = os.Stdin
	if inPath != "-" {
		f, err := os.Open(inPath)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	src, format, err := image.Decode(in)
	if err != nil {
		return fmt.Errorf("failed to decode input: %w", err)
	}

	if scale > 0 && scale != 1 {
		w := uint(float64(src.Bounds().Dx()) * scale)
		src = resize.Resize(w, 0, src, resize.Bilinear)
	}

	start := time.Now()
	out, err := jpegsim.CompressImage(src, strength)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "compressed",
		"format", format,
		"width", out.Rect.Dx(),
		"height", out.Rect.Dy(),
		"strength", strength,
		"elapsed", time.Since(start),
	)

	var w io.Writer = os.Stdout
	if outPath != "-" && outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		w = f
	}
	return png.Encode(w, out)
}
