package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "rasterops",
	Short: "CPU-side float image processing primitives, from the command line",
	Long: `rasterops — a batch runner over the rasterops core: resampling,
dithering, pixel-art upscaling, alpha-fill, ESDT and thresholding, applied
as a named recipe to every image in a directory.

Writes content-addressed output files and a JSON manifest describing what
ran over each source image.`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"rasterops %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[rasterops] "+format+"\n", args...)
	}
}
