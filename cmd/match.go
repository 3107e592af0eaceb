package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jobsift/jobsift/internal/domain"
	"github.com/jobsift/jobsift/internal/logger"
	"github.com/jobsift/jobsift/internal/match"
	"github.com/jobsift/jobsift/internal/refdata"
	"github.com/jobsift/jobsift/internal/source"
)

const (
	PromptShowReasons = "Show reasons per match"
	PromptDumpToFile  = "Dump results to file"
	PromptQuit        = "Quit"
)

var errExit = errors.New("exit requested")

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a pool of job postings against a user profile and rank the matches",
	Run: func(cmd *cobra.Command, _ []string) {
		runMatch(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringP("profile", "p", "", "path to the user profile JSON file")
	matchCmd.Flags().StringP("jobs", "i", "", "path to the candidate pool JSON file")
	matchCmd.Flags().IntP("limit", "l", 10, "maximum number of results")
	matchCmd.Flags().Float64P("min-score", "m", -1, "minimum total score; negative uses the configured default")
	matchCmd.Flags().Duration("timeout", 30*time.Second, "overall scoring deadline")
	matchCmd.Flags().BoolP("no-interactive", "q", false, "print results and exit without the action menu")

	viper.BindPFlag("profile", matchCmd.Flags().Lookup("profile"))
	viper.BindPFlag("jobs", matchCmd.Flags().Lookup("jobs"))
}

func runMatch(cmd *cobra.Command) {
	log, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating a logger: %s\n", err)
		os.Exit(1)
	}

	config, err := getConfig()
	if err != nil {
		log.Fatal("getting a config", zap.Error(err))
	}

	log.Info("starting jobsift", zap.String("version", version))

	profilePath := viper.GetString("profile")
	jobsPath := viper.GetString("jobs")
	if profilePath == "" || jobsPath == "" {
		log.Fatal("both a profile file and a jobs file are required",
			zap.String("hint", "use --profile/--jobs flags or the profile/jobs config keys"),
		)
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	user, err := source.FileProfileSource{Path: profilePath}.Profile(ctx)
	if err != nil {
		log.Fatal("loading user profile", zap.Error(err))
	}

	jobs, err := source.FileJobSource{Path: jobsPath}.Jobs(ctx)
	if err != nil {
		log.Fatal("loading candidate pool", zap.Error(err))
	}

	log.Info("scoring candidates",
		zap.Int("count", len(jobs)),
		zap.Int("preferred_locations", len(user.PreferredLocations)),
	)

	tables := refdata.Load(config.Tables)
	service := match.NewService(config.Matching, tables, log)

	limit, _ := cmd.Flags().GetInt("limit")
	minScore, _ := cmd.Flags().GetFloat64("min-score")

	results, err := service.Search(ctx, user, jobs, limit, minScore)
	if err != nil {
		log.Fatal("search failed", zap.Error(err))
	}

	if len(results) == 0 {
		log.Info("exiting", zap.String("reason", "no jobs matched the profile"))
		return
	}

	printResults(results)

	if quiet, _ := cmd.Flags().GetBool("no-interactive"); quiet {
		return
	}

	prompt := promptui.Select{
		Label: "What next?",
		Items: []string{PromptShowReasons, PromptDumpToFile, PromptQuit},
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			log.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, log, results); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			log.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, log *zap.Logger, results []domain.MatchResult) error {
	switch action {
	case PromptShowReasons:
		for _, r := range results {
			fmt.Printf("%s (%.1f)\n", r.JobID, r.TotalScore)
			for _, reason := range r.Reasons {
				fmt.Printf("  - %s\n", reason)
			}
		}
		return nil
	case PromptDumpToFile:
		file, err := os.CreateTemp("", "matches_*.json")
		if err != nil {
			return fmt.Errorf("creating dump file: %w", err)
		}
		defer file.Close()

		enc := json.NewEncoder(file)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("writing dump file: %w", err)
		}
		log.Info("dumped results to file", zap.String("filename", file.Name()))
		return nil
	case PromptQuit:
		log.Info("exiting", zap.String("reason", "got quit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func printResults(results []domain.MatchResult) {
	fmt.Printf("%-24s %8s  %s\n", "JOB", "SCORE", "TOP REASON")
	for _, r := range results {
		top := ""
		if len(r.Reasons) > 0 {
			top = r.Reasons[0]
		}
		fmt.Printf("%-24s %8.1f  %s\n", r.JobID, r.TotalScore, top)
	}
}
