package cmd

import (
	"context"
	"errors"

	"github.com/skillsift/skillsift/internal/github"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <username>",
	Short: "Analyze and score a candidate's GitHub profile",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		analyze(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().String("format", "table", "output format: table or json")
}

func analyze(cmd *cobra.Command, username string) {
	ctx := context.Background()
	log := newLogger()

	config, err := getConfig()
	if err != nil {
		log.Fatal("getting a config", zap.Error(err))
	}

	analyzer := newAnalyzer(ctx, config.GitHub, log)

	analysis, err := analyzer.Analyze(username)
	if err != nil {
		if errors.Is(err, github.ErrUserNotFound) {
			log.Error("github user not found", zap.String("username", username))
			return
		}
		log.Error("github analysis failed", zap.String("username", username), zap.Error(err))
		return
	}

	if err := render(cmd, analysis); err != nil {
		log.Fatal("rendering analysis", zap.Error(err))
	}
}
