package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/skillsift/skillsift/internal/output"
	"github.com/skillsift/skillsift/internal/resume"
	"github.com/skillsift/skillsift/internal/screening"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract and categorize skills from a single resume",
	Long: "Extract plain text from one resume (.pdf or .docx), categorize its skills " +
		"via the configured model and print the result. Pass '-' to read the resume " +
		"from stdin; the data is spooled through a temporary file that is always removed.",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		extract(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().String("format", "table", "output format: table or json")
	extractCmd.Flags().String("stdin-ext", ".pdf", "resume format when reading from stdin")
}

func extract(cmd *cobra.Command, path string) {
	ctx := context.Background()
	log := newLogger()

	config, err := getConfig()
	if err != nil {
		log.Fatal("getting a config", zap.Error(err))
	}

	extractor, err := newExtractor(ctx, config.AI, log)
	if err != nil {
		log.Fatal("building skill extractor", zap.Error(err))
	}

	var text string
	filename := filepath.Base(path)
	if path == "-" {
		filename = "stdin"
		ext := cmd.Flag("stdin-ext").Value.String()
		text, err = resume.ParseReader(os.Stdin, ext)
	} else {
		text, err = resume.Parse(path)
	}

	result := &screening.Result{Filename: filename}
	if err != nil {
		log.Warn("resume extraction failed", zap.String("filename", filename), zap.Error(err))
		result.Status = screening.StatusFailed
		result.Error = err.Error()
	} else {
		extracted := extractor.Extract(ctx, text)
		result.Status = screening.StatusSuccess
		result.TextLength = len(text)
		result.Skills = extracted
		result.TotalSkills = extracted.Total()
	}

	if err := render(cmd, result); err != nil {
		log.Fatal("rendering result", zap.Error(err))
	}
}

// render writes data in the format selected by the command's format flag.
func render(cmd *cobra.Command, data interface{}) error {
	if cmd.Flag("format").Value.String() == "json" {
		return output.JSON(data)
	}
	return output.Table(data)
}
