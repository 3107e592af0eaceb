package cmd

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jobsift/jobsift/internal/match"
	"github.com/jobsift/jobsift/internal/refdata"
)

const app = "jobsift"

// Config is the full configuration file surface. The matching section is
// pre-filled with the engine defaults so a missing or partial file keeps
// the stock behavior.
type Config struct {
	Profile string `mapstructure:"profile"`
	Jobs    string `mapstructure:"jobs"`

	Matching match.Config      `mapstructure:"matching"`
	Tables   refdata.Overrides `mapstructure:"tables"`
	Server   *ServerConfig     `mapstructure:"server"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Address   string        `mapstructure:"address"`
	TokenFile string        `mapstructure:"token-file"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "jobsift ranks job postings against a seeker's preferences and explains every match",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("server.token-file", "JOBSIFT_TOKEN_FILE"); err != nil {
		log.Fatalf("binding JOBSIFT_TOKEN_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is jobsift.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// A local .env may carry the token file path; missing is fine.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// The engine runs on defaults without a config file, but a file that
	// exists and does not parse is fatal.
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	config := &Config{Matching: match.Defaults()}
	if err := viper.Unmarshal(config); err != nil {
		return nil, err
	}

	return config, nil
}
