package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/skillsift/skillsift/internal/github"
	"github.com/skillsift/skillsift/internal/screening"
	"github.com/skillsift/skillsift/internal/skills"
)

// Table writes data as a formatted table to stdout.
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer.
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case []*screening.Candidate:
		return rankingTable(w, v)
	case *screening.Summary:
		return summaryTable(w, v)
	case *screening.Result:
		return resultDetail(w, v)
	case *github.ProfileAnalysis:
		return analysisDetail(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func rankingTable(w io.Writer, candidates []*screening.Candidate) error {
	if len(candidates) == 0 {
		fmt.Fprintln(w, "No candidates ranked.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tFILE\tSKILLS\tGITHUB\tGITHUB SCORE\tCOMBINED")
	fmt.Fprintln(tw, "----\t----\t------\t------\t------------\t--------")

	for i, c := range candidates {
		username := c.GithubUsername
		if username == "" {
			username = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%d\t%.1f\n",
			i+1,
			truncate(c.Filename, 40),
			c.TotalSkills,
			truncate(username, 25),
			c.GithubScore,
			c.CombinedScore,
		)
	}

	return tw.Flush()
}

func summaryTable(w io.Writer, summary *screening.Summary) error {
	fmt.Fprintf(w, "Resumes processed: %d (successful: %d, failed: %d)\n",
		summary.TotalResumes, summary.Successful, summary.Failed)
	fmt.Fprintf(w, "Unique skills across all candidates: %d\n", summary.TotalUniqueSkills)

	for _, category := range skills.Categories {
		items := summary.UniqueSkills[category]
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s (%d):\n", categoryTitle(category), len(items))
		for _, item := range items {
			fmt.Fprintf(w, "  - %s\n", item)
		}
	}

	return nil
}

func resultDetail(w io.Writer, result *screening.Result) error {
	fmt.Fprintf(w, "File:    %s\n", result.Filename)
	fmt.Fprintf(w, "Status:  %s\n", result.Status)
	if result.Error != "" {
		fmt.Fprintf(w, "Error:   %s\n", result.Error)
		return nil
	}
	fmt.Fprintf(w, "Text:    %d characters\n", result.TextLength)
	fmt.Fprintf(w, "Skills:  %d\n", result.TotalSkills)

	for _, category := range skills.Categories {
		items := result.Skills[category]
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s:\n", categoryTitle(category))
		for _, item := range items {
			fmt.Fprintf(w, "  - %s\n", item)
		}
	}

	return nil
}

func analysisDetail(w io.Writer, analysis *github.ProfileAnalysis) error {
	profile := analysis.Profile
	stats := analysis.Repositories
	score := analysis.Score

	fmt.Fprintf(w, "Username:   %s\n", profile.Username)
	if profile.Name != "" {
		fmt.Fprintf(w, "Name:       %s\n", profile.Name)
	}
	if profile.Company != "" {
		fmt.Fprintf(w, "Company:    %s\n", profile.Company)
	}
	if profile.Location != "" {
		fmt.Fprintf(w, "Location:   %s\n", profile.Location)
	}

	fmt.Fprintf(w, "\nPublic repositories: %d\n", profile.PublicRepos)
	fmt.Fprintf(w, "Followers:           %d\n", profile.Followers)
	fmt.Fprintf(w, "Total stars:         %d\n", stats.TotalStars)
	fmt.Fprintf(w, "Total forks:         %d\n", stats.TotalForks)

	if len(stats.Languages) > 0 {
		fmt.Fprintf(w, "\nLanguages (%d):\n", len(stats.Languages))
		for _, language := range languagesByCount(stats.Languages) {
			fmt.Fprintf(w, "  - %s: %d repos\n", language, stats.Languages[language])
		}
	}

	if len(stats.TopRepos) > 0 {
		fmt.Fprintln(w, "\nTop repositories:")
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "  NAME\tLANGUAGE\tSTARS\tFORKS")
		for _, repo := range stats.TopRepos {
			language := repo.Language
			if language == "" {
				language = "-"
			}
			fmt.Fprintf(tw, "  %s\t%s\t%d\t%d\n",
				truncate(repo.Name, 40), language, repo.Stars, repo.Forks)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "\nScore: %d/%d (%s)\n", score.TotalScore, score.MaxScore, score.Rating)
	fmt.Fprintf(w, "  repositories:       %d\n", score.Breakdown.Repositories)
	fmt.Fprintf(w, "  stars:              %d\n", score.Breakdown.Stars)
	fmt.Fprintf(w, "  language diversity: %d\n", score.Breakdown.LanguageDiversity)
	fmt.Fprintf(w, "  followers:          %d\n", score.Breakdown.Followers)
	fmt.Fprintf(w, "  forks:              %d\n", score.Breakdown.Forks)

	return nil
}

// languagesByCount orders language names by repo count descending, name
// ascending for equal counts.
func languagesByCount(languages map[string]int) []string {
	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if languages[names[i]] != languages[names[j]] {
			return languages[names[i]] > languages[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

func categoryTitle(category string) string {
	words := strings.Split(category, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
