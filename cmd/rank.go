package cmd

import (
	"context"
	"encoding/json"
	"os"

	"github.com/skillsift/skillsift/internal/screening"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rankCmd = &cobra.Command{
	Use:   "rank [dir]",
	Short: "Rank candidates by combining resume skills with github profile scores",
	Long: "Process every resume in the directory, look up each candidate's GitHub " +
		"username in the 'candidates' map of the configuration file (filename to " +
		"username), and print the candidates ordered by combined score.",
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rank(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().String("format", "table", "output format: table or json")
	rankCmd.Flags().StringP("output", "o", "", "also dump the ranked candidates as JSON to this path")
}

func rank(cmd *cobra.Command, args []string) {
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

	analyzer := newAnalyzer(ctx, config.GitHub, log)

	log.Info("starting candidate ranking",
		zap.String("dir", dir),
		zap.Int("linked_profiles", len(config.Candidates)),
	)

	runner := screening.NewRunner(extractor, log)
	ranker := screening.NewRanker(runner, analyzer, log)

	candidates, err := ranker.Rank(ctx, dir, config.Candidates)
	if err != nil {
		log.Error("ranking produced no results", zap.Error(err))
	}

	if err := render(cmd, candidates); err != nil {
		log.Fatal("rendering ranking", zap.Error(err))
	}

	if path := cmd.Flag("output").Value.String(); path != "" {
		if err := dumpCandidates(candidates, path); err != nil {
			log.Error("dumping ranking to file", zap.String("path", path), zap.Error(err))
			return
		}
		log.Info("ranking saved", zap.String("path", path))
	}
}

func dumpCandidates(candidates []*screening.Candidate, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(candidates)
}
