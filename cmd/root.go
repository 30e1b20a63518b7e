package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/waiooaung/portfolio/internal/config"
	"github.com/waiooaung/portfolio/internal/scroll"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Single-page developer portfolio",
	Long: `Portfolio renders a single-page personal portfolio from its built-in
content: hero, skills, experience, projects and contact. It can serve the
page with a live page shell, or export it as static files.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "portfolio.yml", "config file path")
}

// loadConfig reads and validates the configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func scrollOptions(cfg *config.Config) scroll.Options {
	return scroll.Options{
		Threshold: cfg.Scroll.Threshold,
		Behavior:  cfg.Scroll.Behavior,
	}
}
