// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the tile-images CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ajenhl/tile-images/internal/manifest"
	"github.com/ajenhl/tile-images/internal/pdf"
	"github.com/ajenhl/tile-images/internal/raster"
	"github.com/ajenhl/tile-images/internal/tiler"
	"github.com/ajenhl/tile-images/internal/units"
	"github.com/ajenhl/tile-images/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultDPI      = 300
	defaultWidthMM  = 312
	defaultHeightMM = 440
)

// rootCmd is the base command; it runs the whole pipeline itself.
var rootCmd = &cobra.Command{
	Use:   "tile-images [flags] DEST IMAGE...",
	Short: "Compile a double-sided, tiled PDF from page images",
	Long: `tile-images compiles a double-sided PDF from images, tiling each page as
necessary to fit the printable paper size. Consecutive images form the front
and back of one physical sheet, so an even number of images is required. All
images must share identical dimensions once brought into portrait
orientation.`,
	Args:         cobra.MinimumNArgs(2),
	SilenceUsage: true,
	RunE:         runRoot,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().Int("dpi", defaultDPI, "DPI of images")
	rootCmd.Flags().Int("width", defaultWidthMM, "width of printable area in millimetres")
	rootCmd.Flags().Int("height", defaultHeightMM, "height of printable area in millimetres")
	rootCmd.Flags().String("manifest", "", "also write a YAML cut-guide manifest to this path")
	rootCmd.Flags().BoolP("verbose", "v", false, "report geometry details on stderr")

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./tile-images.yaml or ~/.config/tile-images/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("tile-images")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "tile-images"))
		}
	}

	viper.SetEnvPrefix("TILE_IMAGES")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// intSetting resolves a geometry value: an explicit flag wins, then the
// config file or environment, then the flag default.
func intSetting(cmd *cobra.Command, name string) int {
	if !cmd.Flags().Changed(name) && viper.IsSet(name) {
		return viper.GetInt(name)
	}
	v, _ := cmd.Flags().GetInt(name)
	return v
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg := types.RenderConfig{
		DPI:      intSetting(cmd, "dpi"),
		WidthMM:  intSetting(cmd, "width"),
		HeightMM: intSetting(cmd, "height"),
	}
	manifestPath, _ := cmd.Flags().GetString("manifest")
	verbose, _ := cmd.Flags().GetBool("verbose")

	dest, imagePaths := args[0], args[1:]

	reporter := io.Discard
	if verbose {
		reporter = cmd.ErrOrStderr()
	}

	if cfg.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %d", cfg.DPI)
	}
	paper := units.PrintableArea(cfg)
	if !paper.Positive() {
		return fmt.Errorf("%d x %d mm at %d dpi yields %s px: %w",
			cfg.WidthMM, cfg.HeightMM, cfg.DPI, paper, units.ErrDegenerateGeometry)
	}

	images, imageSize, err := raster.LoadBatch(imagePaths, cfg.DPI, reporter)
	if err != nil {
		return err
	}

	pieces, grid := tiler.Collate(images, imageSize, paper, cfg.DPI, reporter)
	fmt.Fprintf(reporter, "tile grid (columns x rows): %s\n", grid)

	if err := pdf.Write(dest, pieces, paper, cfg.DPI, reporter); err != nil {
		return err
	}

	if manifestPath != "" {
		doc := manifest.Build(pieces, imageSize, paper, grid, cfg.DPI)
		if err := manifest.WriteFile(manifestPath, doc); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d pages)\n", dest, len(pieces))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps pipeline failures to the process exit status: 2 for a
// dimension mismatch between images, 1 for everything else.
func exitCode(err error) int {
	if errors.Is(err, raster.ErrSizeMismatch) {
		return 2
	}
	return 1
}
