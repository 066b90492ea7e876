package github

// Component caps of the profile score. The caps sum to 100, so the total
// needs no explicit clamp.
const (
	maxRepositoryScore = 30
	maxStarScore       = 25
	maxLanguageScore   = 20
	maxFollowerScore   = 15
	maxForkScore       = 10
	maxTotalScore      = 100
)

// Rating labels by total score threshold.
const (
	RatingExceptional = "Exceptional"
	RatingStrong      = "Strong"
	RatingGood        = "Good"
	RatingModerate    = "Moderate"
	RatingBeginner    = "Beginner"
)

// Score is the weighted 0-100 assessment of a GitHub profile.
type Score struct {
	TotalScore int        `json:"total_score"`
	MaxScore   int        `json:"max_score"`
	Percentage float64    `json:"percentage"`
	Breakdown  *Breakdown `json:"breakdown"`
	Rating     string     `json:"rating"`
}

// Breakdown holds the five named component scores.
type Breakdown struct {
	Repositories      int `json:"repositories"`
	Stars             int `json:"stars"`
	LanguageDiversity int `json:"language_diversity"`
	Followers         int `json:"followers"`
	Forks             int `json:"forks"`
}

// CalculateScore computes the weighted profile score. Inputs are clamped to
// zero first so a malformed API payload can never produce a negative
// component.
func CalculateScore(profile *ProfileInfo, stats *RepositoryStats) *Score {
	breakdown := &Breakdown{
		Repositories:      repositoryScore(clamp(stats.TotalRepos)),
		Stars:             starScore(clamp(stats.TotalStars)),
		LanguageDiversity: languageScore(clamp(len(stats.Languages))),
		Followers:         followerScore(clamp(profile.Followers)),
		Forks:             forkScore(clamp(stats.TotalForks)),
	}

	total := breakdown.Repositories +
		breakdown.Stars +
		breakdown.LanguageDiversity +
		breakdown.Followers +
		breakdown.Forks

	return &Score{
		TotalScore: total,
		MaxScore:   maxTotalScore,
		Percentage: float64(total),
		Breakdown:  breakdown,
		Rating:     Rating(total),
	}
}

// Rating maps a total score to its discrete label.
func Rating(score int) string {
	switch {
	case score >= 80:
		return RatingExceptional
	case score >= 60:
		return RatingStrong
	case score >= 40:
		return RatingGood
	case score >= 20:
		return RatingModerate
	default:
		return RatingBeginner
	}
}

func repositoryScore(repos int) int {
	return min(maxRepositoryScore, repos*2)
}

func starScore(stars int) int {
	switch {
	case stars > 100:
		return maxStarScore
	case stars > 50:
		return 20
	case stars > 20:
		return 15
	case stars > 5:
		return 10
	default:
		return stars
	}
}

func languageScore(languages int) int {
	return min(maxLanguageScore, languages*4)
}

func followerScore(followers int) int {
	return min(maxFollowerScore, followers/2)
}

func forkScore(forks int) int {
	switch {
	case forks > 20:
		return maxForkScore
	case forks > 10:
		return 7
	case forks > 5:
		return 5
	default:
		return min(5, forks)
	}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
