package github

import (
	"fmt"

	"go.uber.org/zap"
)

const topRepoCount = 5

// ProfileAnalysis is the full result of analyzing one GitHub account.
type ProfileAnalysis struct {
	Profile      *ProfileInfo     `json:"profile"`
	Repositories *RepositoryStats `json:"repositories"`
	Score        *Score           `json:"score"`
}

// ProfileInfo mirrors the profile attributes recorded per analysis.
type ProfileInfo struct {
	Username    string `json:"username"`
	Name        string `json:"name,omitempty"`
	Bio         string `json:"bio,omitempty"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	Email       string `json:"email,omitempty"`
	Blog        string `json:"blog,omitempty"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
}

// RepositoryStats aggregates per-repository statistics for an account.
type RepositoryStats struct {
	TotalRepos int            `json:"total_repos"`
	Languages  map[string]int `json:"languages"`
	TotalStars int            `json:"total_stars"`
	TotalForks int            `json:"total_forks"`
	TopRepos   []*TopRepo     `json:"top_repos"`
}

// TopRepo is one of the highest-starred repositories of an account.
type TopRepo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	URL         string `json:"url"`
}

// Analyzer assesses candidate GitHub profiles.
type Analyzer struct {
	client *Client
	logger *zap.Logger
}

func NewAnalyzer(client *Client, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{client: client, logger: logger}
}

// Analyze fetches the profile and repository list for the username and
// computes the weighted score. A missing user or an API failure is returned
// as an error; callers treat it as "no profile contribution" and continue.
func (a *Analyzer) Analyze(username string) (*ProfileAnalysis, error) {
	user, err := a.client.GetUser(username)
	if err != nil {
		return nil, fmt.Errorf("fetching profile %q: %w", username, err)
	}

	repositories, err := a.client.GetRepositories(username)
	if err != nil {
		return nil, fmt.Errorf("fetching repositories for %q: %w", username, err)
	}

	a.logger.Debug("analyzing github profile",
		zap.String("username", username),
		zap.Int("repositories", repositories.Len()),
	)

	profile := &ProfileInfo{
		Username:    username,
		Name:        user.Name,
		Bio:         user.Bio,
		Company:     user.Company,
		Location:    user.Location,
		Email:       user.Email,
		Blog:        user.Blog,
		PublicRepos: user.PublicRepos,
		Followers:   user.Followers,
		Following:   user.Following,
	}

	stats := AggregateRepositories(repositories)

	return &ProfileAnalysis{
		Profile:      profile,
		Repositories: stats,
		Score:        CalculateScore(profile, stats),
	}, nil
}

// AggregateRepositories computes per-language counts, star/fork totals and the
// top repositories by star count. Repositories without a declared language are
// excluded from the language tally but still count toward totals.
func AggregateRepositories(repositories *Repositories) *RepositoryStats {
	stats := &RepositoryStats{
		TotalRepos: repositories.Len(),
		Languages:  map[string]int{},
		TopRepos:   []*TopRepo{},
	}

	for _, repo := range repositories.Items {
		if repo.Language != nil && *repo.Language != "" {
			stats.Languages[*repo.Language]++
		}
		stats.TotalStars += repo.StargazersCount
		stats.TotalForks += repo.ForksCount
	}

	for _, repo := range repositories.TopByStars(topRepoCount) {
		top := &TopRepo{
			Name:  repo.Name,
			Stars: repo.StargazersCount,
			Forks: repo.ForksCount,
			URL:   repo.HTMLURL,
		}
		if repo.Description != nil {
			top.Description = *repo.Description
		}
		if repo.Language != nil {
			top.Language = *repo.Language
		}
		stats.TopRepos = append(stats.TopRepos, top)
	}

	return stats
}
