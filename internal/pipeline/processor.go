package pipeline

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/AnyUserName/rasterops/internal/encoder"
	"github.com/AnyUserName/rasterops/internal/hasher"
	"github.com/AnyUserName/rasterops/internal/manifest"
	"github.com/AnyUserName/rasterops/internal/raster"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// processResult holds the result of processing a single source image.
type processResult struct {
	key            string
	asset          manifest.Asset
	err            error
	skippedRegress int // outputs skipped because larger than original
}

// processImage handles a single source image: decode, stat, run the
// profile's recipe, encode, content-hash, write.
func processImage(src Source, cfg Config, registry *encoder.Registry) processResult {
	result := processResult{key: src.Key}

	f, err := os.Open(src.AbsPath)
	if err != nil {
		result.err = fmt.Errorf("open %s: %w", src.RelPath, err)
		return result
	}
	defer f.Close()

	decoded, _, err := image.Decode(f)
	if err != nil {
		result.err = fmt.Errorf("decode %s: %w", src.RelPath, err)
		return result
	}

	bounds := decoded.Bounds()
	origW := bounds.Dx()
	origH := bounds.Dy()
	alpha := hasAlpha(decoded)

	img := vec4FromImage(decoded)
	mean, variance := meanAndVariance(raster.NDimFromVec4(img))
	avg := [3]uint8{
		uint8(clamp01(mean[0]) * 255),
		uint8(clamp01(mean[1]) * 255),
		uint8(clamp01(mean[2]) * 255),
	}

	result.asset = manifest.Asset{
		Original: manifest.OriginalInfo{
			Width:    origW,
			Height:   origH,
			Format:   src.Format,
			Size:     src.Size,
			HasAlpha: alpha,
		},
		Channels:    4,
		Mean:        mean,
		Variance:    variance,
		AspectRatio: float64(origW) / float64(origH),
		AvgColor:    &avg,
	}

	// Run the recipe.
	for _, op := range cfg.Profile.Operations {
		out, err := applyOperation(img, op)
		if err != nil {
			result.err = fmt.Errorf("%s: operation %s: %w", src.Key, op.Name, err)
			return result
		}
		img = out
	}

	outW, outH := img.Width(), img.Height()
	encoded := imageFromVec4(img)

	formats := registry.ResolveFormats(cfg.Profile.Formats, alpha)

	keyDir := filepath.Dir(src.Key)
	if keyDir != "." {
		os.MkdirAll(filepath.Join(cfg.OutputDir, keyDir), 0o755)
	}

	for _, format := range formats {
		enc := registry.Get(format)
		if enc == nil {
			continue
		}

		data, err := enc.Encode(encoded, cfg.Profile.Quality)
		if err != nil {
			if cfg.Verbose {
				fmt.Fprintf(os.Stderr, "[rasterops] warn: encode %s as %s: %v\n", src.Key, format, err)
			}
			continue
		}

		if cfg.NoRegressSize && int64(len(data)) >= src.Size {
			if cfg.Verbose {
				fmt.Fprintf(os.Stderr, "[rasterops] skip: %s %s — encoded %d >= original %d bytes\n",
					src.Key, format, len(data), src.Size)
			}
			result.skippedRegress++
			continue
		}

		contentHash := hasher.ContentHash(data, 16)

		fileName := fmt.Sprintf("%s.%s.%s.%s", filepath.Base(src.Key), format, contentHash[:8], enc.Extension())
		relPath := filepath.ToSlash(filepath.Join(keyDir, fileName))

		outPath := filepath.Join(cfg.OutputDir, relPath)
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			result.err = fmt.Errorf("write %s: %w", relPath, err)
			return result
		}

		result.asset.Outputs = append(result.asset.Outputs, manifest.Output{
			Format: format,
			Width:  outW,
			Height: outH,
			Size:   int64(len(data)),
			Hash:   contentHash,
			Path:   relPath,
		})
	}

	return result
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
