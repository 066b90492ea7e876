package screening

import (
	"context"
	"math"
	"sort"

	"github.com/skillsift/skillsift/internal/github"
	"github.com/skillsift/skillsift/internal/skills"

	"go.uber.org/zap"
)

// Weighting of the combined score: 40% resume-derived, 60% profile-derived.
const (
	resumeWeight = 0.4
	githubWeight = 0.6

	// Number of resume skills that counts as a full resume score.
	resumeSkillCeiling = 50
)

// Candidate combines one resume's extraction result with an optional GitHub
// profile analysis. Constructed during ranking, never mutated afterwards.
type Candidate struct {
	Filename       string                  `json:"filename"`
	ResumeSkills   skills.Set              `json:"resume_skills"`
	TotalSkills    int                     `json:"total_skills"`
	GithubUsername string                  `json:"github_username,omitempty"`
	GithubAnalysis *github.ProfileAnalysis `json:"github_analysis,omitempty"`
	GithubScore    int                     `json:"github_score"`
	CombinedScore  float64                 `json:"combined_score"`
}

// Ranker scores and orders candidates from a resume directory and a
// filename-to-username mapping.
type Ranker struct {
	runner   *Runner
	analyzer *github.Analyzer
	logger   *zap.Logger
}

func NewRanker(runner *Runner, analyzer *github.Analyzer, logger *zap.Logger) *Ranker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ranker{runner: runner, analyzer: analyzer, logger: logger}
}

// Rank processes every resume in dir, analyzes the linked GitHub profile when
// the mapping provides one, and returns candidates sorted by combined score
// descending. Equal scores keep their relative input order. Profile lookup
// failures leave the candidate without a GitHub contribution; they never abort
// the ranking.
func (r *Ranker) Rank(ctx context.Context, dir string, usernames map[string]string) ([]*Candidate, error) {
	results, err := r.runner.ProcessDirectory(ctx, dir)
	if err != nil {
		return nil, err
	}

	candidates := make([]*Candidate, 0, len(results))
	for _, result := range results {
		if result.Status != StatusSuccess {
			continue
		}

		candidate := &Candidate{
			Filename:       result.Filename,
			ResumeSkills:   result.Skills,
			TotalSkills:    result.TotalSkills,
			GithubUsername: usernames[result.Filename],
		}

		if candidate.GithubUsername != "" && r.analyzer != nil {
			analysis, err := r.analyzer.Analyze(candidate.GithubUsername)
			if err != nil {
				r.logger.Warn("github analysis failed",
					zap.String("filename", candidate.Filename),
					zap.String("username", candidate.GithubUsername),
					zap.Error(err),
				)
			} else {
				candidate.GithubAnalysis = analysis
				candidate.GithubScore = analysis.Score.TotalScore
			}
		}

		candidate.CombinedScore = CombinedScore(candidate.TotalSkills, candidate.GithubScore)
		candidates = append(candidates, candidate)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].CombinedScore > candidates[j].CombinedScore
	})

	return candidates, nil
}

// CombinedScore blends the normalized resume skill count with the GitHub
// profile score, rounded to one decimal.
func CombinedScore(totalSkills, githubScore int) float64 {
	resumeScore := math.Min(100, float64(totalSkills)/resumeSkillCeiling*100)
	combined := resumeScore*resumeWeight + float64(githubScore)*githubWeight
	return math.Round(combined*10) / 10
}
