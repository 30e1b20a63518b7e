package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/waiooaung/portfolio/internal/content"
	"github.com/waiooaung/portfolio/internal/page"
	"github.com/waiooaung/portfolio/internal/site"
)

var buildOut string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the portfolio as static files",
	Long: `The build command renders the page once and writes index.html and its
static assets to the output directory (default ./public). The exported page
has no live channel: the menu toggles locally and the scroll-to-top control
stays hidden.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if buildOut != "" {
			cfg.OutputDir = buildOut
		}

		composer := page.Composer{Shell: page.Shell{
			ScrollThreshold: cfg.Scroll.Threshold,
			ScrollBehavior:  cfg.Scroll.Behavior,
		}}
		if err := site.Export(cfg.OutputDir, content.Default(), composer); err != nil {
			return err
		}
		log.Printf("site: exported to %s", cfg.OutputDir)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "output directory (overrides output_dir)")
	rootCmd.AddCommand(buildCmd)
}
