package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/models"
	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/registry"
	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/service"
)

// maxPoints mirrors the historical 1..10 range of the point selector.
const maxPoints = 10

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	asset  string
	lat    float64
	lon    float64
	models []string
	points int
	outDir string
}

func newRootCmd() *cobra.Command {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "gridmap",
		Short:         "Generate KML and HTML maps of the nearest forecast-model grid points",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&opts.asset, "asset", "", "asset name used in titles and file names")
	root.PersistentFlags().Float64Var(&opts.lat, "lat", 0, "query latitude, -90 to 90")
	root.PersistentFlags().Float64Var(&opts.lon, "lon", 0, "query longitude, -180 to 180")
	root.PersistentFlags().StringSliceVar(&opts.models, "models", []string{"ECMWF", "GFS_0.5"}, "forecast models to resolve")
	root.PersistentFlags().IntVar(&opts.points, "points", 4, "grid points per model")
	root.PersistentFlags().StringVar(&opts.outDir, "out", ".", "output directory")

	root.AddCommand(newKMLCmd(logger, opts))
	root.AddCommand(newHTMLCmd(logger, opts))
	root.AddCommand(newModelsCmd())
	return root
}

func newKMLCmd(logger zerolog.Logger, opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kml",
		Short: "Write <asset>.kml with the ranked grid points",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := generate(cmd.Context(), opts)
			if err != nil {
				return err
			}
			path := filepath.Join(opts.outDir, out.Query.Asset+".kml")
			if err := os.WriteFile(path, out.MarkerFile, 0o644); err != nil {
				return fmt.Errorf("write kml: %w", err)
			}
			logger.Info().Str("path", path).Msg("kml written")
			return nil
		},
	}
	markQueryFlagsRequired(cmd)
	return cmd
}

func newHTMLCmd(logger zerolog.Logger, opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "html",
		Short: "Write <asset>.html with an interactive map of the ranked grid points",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := generate(cmd.Context(), opts)
			if err != nil {
				return err
			}
			path := filepath.Join(opts.outDir, out.Query.Asset+".html")
			if err := os.WriteFile(path, out.Page, 0o644); err != nil {
				return fmt.Errorf("write html: %w", err)
			}
			logger.Info().Str("path", path).Msg("html written")
			return nil
		},
	}
	markQueryFlagsRequired(cmd)
	return cmd
}

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the supported forecast model grids",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := registry.NewBuiltin()
			if err != nil {
				return err
			}
			for _, spec := range reg.Specs() {
				extent := "global"
				if !spec.Extent.Global {
					b := spec.Extent.Bound
					extent = fmt.Sprintf("lat %g..%g lon %g..%g", b.Min.Lat(), b.Max.Lat(), b.Min.Lon(), b.Max.Lon())
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %gx%g deg  %s  %s\n", spec.Name, spec.LatStep, spec.LonStep, spec.Color, extent)
			}
			return nil
		},
	}
}

func markQueryFlagsRequired(cmd *cobra.Command) {
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		for _, name := range []string{"asset", "lat", "lon"} {
			if !cmd.Flags().Changed(name) {
				return fmt.Errorf("required flag --%s not set", name)
			}
		}
		return nil
	}
}

func generate(ctx context.Context, opts *rootOptions) (*models.RenderedOutput, error) {
	reg, err := registry.NewBuiltin()
	if err != nil {
		return nil, err
	}
	svc := service.NewGridPointService(reg, maxPoints)
	q := models.Query{
		Asset:          opts.asset,
		Latitude:       opts.lat,
		Longitude:      opts.lon,
		Models:         opts.models,
		PointsPerModel: opts.points,
	}
	return svc.Render(ctx, q)
}
