package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	chartservice "github.com/bshore/github-contribution-merge/pkg/services/chart"
	"github.com/bshore/github-contribution-merge/pkg/services/config"
	"github.com/bshore/github-contribution-merge/pkg/services/github"
	"github.com/bshore/github-contribution-merge/pkg/services/render"

	"github.com/bshore/github-contribution-merge/pkg/models/domain"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// RenderCmd renders a merged chart once and writes the SVG to a file
// or stdout, using the same pipeline as the web server.
type RenderCmd struct {
	cfgPath string
	merge   []string
	years   int
	theme   string
	output  string
}

func NewRenderCmd() *cobra.Command {
	rc := &RenderCmd{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a merged contribution chart to a file",
		RunE:  rc.run,
	}

	cmd.Flags().StringVarP(&rc.cfgPath, "config", "c", "", "Path to a config file")
	cmd.Flags().StringSliceVar(&rc.merge, "merge", nil, "Secondary accounts to merge")
	cmd.Flags().IntVar(&rc.years, "years", 1, "Number of years to look back")
	cmd.Flags().StringVar(&rc.theme, "theme", render.DefaultTheme, "Theme name")
	cmd.Flags().StringVarP(&rc.output, "output", "o", "-", "Output file, or - for stdout")

	return cmd
}

func (rc *RenderCmd) run(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	if rc.years < 1 {
		return fmt.Errorf("invalid years value %d: must be a positive integer", rc.years)
	}
	if !render.IsValidTheme(rc.theme) {
		return fmt.Errorf("invalid theme %q: valid themes are %s", rc.theme, strings.Join(render.ThemeNames(), ", "))
	}

	cfg, err := config.Load(rc.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx, cancel := context.WithTimeout(logger.WithContext(cmd.Context()), 60*time.Second)
	defer cancel()

	controller := chartservice.NewController(github.NewClient(cfg.GitHub))
	doc, err := controller.RenderChart(ctx, domain.ChartRequest{
		Primary:     cfg.GitHub.Username,
		Secondaries: rc.merge,
		Years:       rc.years,
		Theme:       rc.theme,
	})
	if err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	if rc.output == "-" {
		fmt.Print(doc)
		return nil
	}
	if err := os.WriteFile(rc.output, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", rc.output, err)
	}
	logger.Info().Str("output", rc.output).Msg("chart written")
	return nil
}

func main() {
	if err := NewRenderCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
