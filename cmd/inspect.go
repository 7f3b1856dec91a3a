package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/AnyUserName/rasterops/internal/manifest"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <out_dir_or_manifest>",
	Short: "Display per-asset and aggregate statistics for a converted directory",
	Long: `Reads a rasterops.manifest.json (or a directory containing one) and
reports, per asset, size/channel count/mean/variance alongside the
aggregate format and output breakdown for the whole run.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(_ *cobra.Command, args []string) error {
	path := args[0]

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		path = filepath.Join(path, "rasterops.manifest.json")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	var m manifest.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("parse manifest: %w", err)
	}

	printInspectReport(&m)
	return nil
}

func printInspectReport(m *manifest.Manifest) {
	fmt.Println()
	fmt.Printf("  Manifest version: %d\n", m.Version)
	fmt.Printf("  Generated:        %s\n", m.GeneratedAt)
	fmt.Printf("  Profile:          %s\n", m.Profile)
	if m.BuildInfo != nil {
		fmt.Printf("  Workers:          %d\n", m.BuildInfo.Workers)
	} else {
		fmt.Printf("  Workers (est):    %d\n", runtime.NumCPU())
	}
	fmt.Println()

	s := m.Stats
	fmt.Printf("  Total assets:     %d\n", s.TotalAssets)
	fmt.Printf("  Total outputs:    %d\n", s.TotalOutputs)
	fmt.Printf("  Input size:       %s\n", formatBytes(s.TotalInputBytes))
	fmt.Printf("  Output size:      %s\n", formatBytes(s.TotalOutputBytes))

	if s.TotalInputBytes > 0 {
		ratio := float64(s.TotalOutputBytes) / float64(s.TotalInputBytes) * 100
		fmt.Printf("  Compression:      %.1f%% of original\n", ratio)
	}
	if s.SkippedRegress > 0 {
		fmt.Printf("  Skipped:          %d outputs (larger than original)\n", s.SkippedRegress)
	}
	fmt.Println()

	// Per-format breakdown.
	formatStats := map[string]struct {
		count int
		bytes int64
	}{}
	for _, a := range m.Assets {
		for _, o := range a.Outputs {
			fs := formatStats[o.Format]
			fs.count++
			fs.bytes += o.Size
			formatStats[o.Format] = fs
		}
	}

	fmt.Println("  Format breakdown:")
	for _, f := range []string{"avif", "webp", "jpeg", "png"} {
		if fs, ok := formatStats[f]; ok {
			fmt.Printf("    %-6s  %4d files  %s\n", f, fs.count, formatBytes(fs.bytes))
		}
	}
	fmt.Println()

	// Per-channel-count breakdown.
	channelStats := map[int]int{}
	for _, a := range m.Assets {
		channelStats[a.Channels]++
	}
	var channelCounts []int
	for c := range channelStats {
		channelCounts = append(channelCounts, c)
	}
	sort.Ints(channelCounts)
	fmt.Println("  Channel breakdown:")
	for _, c := range channelCounts {
		fmt.Printf("    %d channels  %4d assets\n", c, channelStats[c])
	}
	fmt.Println()

	// Per-asset detail, sorted by key for stable output.
	var keys []string
	for key := range m.Assets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Println("  Assets:")
	for _, key := range keys {
		a := m.Assets[key]
		fmt.Printf("    %s\n", truncKey(key, 60))
		fmt.Printf("      size: %s  channels: %d  outputs: %d\n",
			formatBytes(a.Original.Size), a.Channels, len(a.Outputs))
		if len(a.Mean) > 0 {
			fmt.Printf("      mean: %s  variance: %s\n", formatFloatSlice(a.Mean), formatFloatSlice(a.Variance))
		}
	}
	fmt.Println()

	// Warnings.
	var warnings []string
	for key, a := range m.Assets {
		if len(a.Outputs) == 0 {
			warnings = append(warnings, fmt.Sprintf("asset %q has no outputs", key))
		}
	}
	if len(warnings) > 0 {
		sort.Strings(warnings)
		fmt.Printf("  Warnings (%d):\n", len(warnings))
		for _, w := range warnings {
			fmt.Printf("    ⚠ %s\n", w)
		}
		fmt.Println()
	}
}

func formatFloatSlice(v []float64) string {
	out := "["
	for i, f := range v {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%.4f", f)
	}
	return out + "]"
}
