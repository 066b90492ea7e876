package cmd

import (
	"context"
	"fmt"

	"github.com/skillsift/skillsift/internal/output"
	"github.com/skillsift/skillsift/internal/screening"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptSaveReport      = "Save report to file"
	PromptShowFailedFiles = "Show failed files"
	PromptQuit            = "Quit"

	defaultReportFile = "batch_results.json"
)

var batchPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptSaveReport, PromptShowFailedFiles, PromptQuit},
}

var batchCmd = &cobra.Command{
	Use:   "batch [dir]",
	Short: "Process every resume in a directory and summarize the extracted skills",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		batch(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().BoolP("auto-approve", "y", false, "do not prompt; save the report when an output path is set")
	batchCmd.Flags().StringP("output", "o", "", "path for the JSON report (default is "+defaultReportFile+")")

	viper.BindPFlag("output", batchCmd.Flags().Lookup("output"))
}

func batch(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	log := newLogger()

	config, err := getConfig()
	if err != nil {
		log.Fatal("getting a config", zap.Error(err))
	}

	dir := config.ResumeDir
	if len(args) > 0 {
		dir = args[0]
	}
	if dir == "" {
		log.Fatal("resume directory is required (argument or resume-dir in the configuration file)")
	}

	extractor, err := newExtractor(ctx, config.AI, log)
	if err != nil {
		log.Fatal("building skill extractor", zap.Error(err))
	}

	log.Info("starting batch processing", zap.String("dir", dir))

	runner := screening.NewRunner(extractor, log)
	results, err := runner.ProcessDirectory(ctx, dir)
	if err != nil {
		// A missing or unreadable directory is reported, not fatal; the
		// run completes with an empty result set.
		log.Error("batch run produced no results", zap.Error(err))
	}

	report := screening.NewReport(results)

	if err := output.Table(report.Summary); err != nil {
		log.Fatal("rendering summary", zap.Error(err))
	}

	if cmd.Flag("auto-approve").Value.String() == "true" {
		if path := reportPath(); path != "" {
			saveReport(report, path, log)
		}
		return
	}

	for {
		_, action, err := batchPrompt.Run()
		if err != nil {
			log.Fatal("exiting", zap.Error(err))
		}

		switch action {
		case PromptSaveReport:
			saveReport(report, reportPath(), log)
		case PromptShowFailedFiles:
			showFailed(results)
		case PromptQuit:
			return
		}
	}
}

func reportPath() string {
	path := viper.GetString("output")
	if path == "" {
		path = defaultReportFile
	}
	return path
}

func saveReport(report *screening.Report, path string, log *zap.Logger) {
	if err := report.Save(path); err != nil {
		log.Error("saving report", zap.String("path", path), zap.Error(err))
		return
	}
	log.Info("report saved", zap.String("path", path))
}

func showFailed(results []*screening.Result) {
	failed := 0
	for _, result := range results {
		if result.Status != screening.StatusFailed {
			continue
		}
		failed++
		fmt.Printf("%s: %s\n", result.Filename, result.Error)
	}
	if failed == 0 {
		fmt.Println("No failed files.")
	}
}
