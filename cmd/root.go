package cmd

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"coursetrack/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "coursetrack",
	Short: "Course and task tracker",
	Long: `coursetrack keeps a list of courses and the tasks that belong to them,
shows progress and upcoming deadlines, and serves the tracker as a web app.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "coursetrack.yml", "config file path")
}

// loadConfig reads .env (if any), then the config file and COURSETRACK_* overrides.
func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded, using the process environment")
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
