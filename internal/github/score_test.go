package github

import "testing"

func TestRepositoryScore(t *testing.T) {
	cases := []struct {
		repos int
		want  int
	}{
		{repos: 0, want: 0},
		{repos: 1, want: 2},
		{repos: 5, want: 10},
		{repos: 14, want: 28},
		{repos: 15, want: 30},
		{repos: 20, want: 30},
	}

	for _, tc := range cases {
		if got := repositoryScore(tc.repos); got != tc.want {
			t.Fatalf("repositoryScore(%d) = %d, want %d", tc.repos, got, tc.want)
		}
	}
}

func TestStarScore(t *testing.T) {
	cases := []struct {
		stars int
		want  int
	}{
		{stars: 0, want: 0},
		{stars: 3, want: 3},
		{stars: 5, want: 5},
		{stars: 6, want: 10},
		{stars: 20, want: 10},
		{stars: 21, want: 15},
		{stars: 50, want: 15},
		{stars: 51, want: 20},
		{stars: 100, want: 20},
		{stars: 101, want: 25},
		{stars: 150, want: 25},
	}

	for _, tc := range cases {
		if got := starScore(tc.stars); got != tc.want {
			t.Fatalf("starScore(%d) = %d, want %d", tc.stars, got, tc.want)
		}
	}
}

func TestLanguageScore(t *testing.T) {
	cases := []struct {
		languages int
		want      int
	}{
		{languages: 0, want: 0},
		{languages: 3, want: 12},
		{languages: 5, want: 20},
		{languages: 8, want: 20},
	}

	for _, tc := range cases {
		if got := languageScore(tc.languages); got != tc.want {
			t.Fatalf("languageScore(%d) = %d, want %d", tc.languages, got, tc.want)
		}
	}
}

func TestFollowerScore(t *testing.T) {
	cases := []struct {
		followers int
		want      int
	}{
		{followers: 0, want: 0},
		{followers: 7, want: 3},
		{followers: 30, want: 15},
		{followers: 100, want: 15},
	}

	for _, tc := range cases {
		if got := followerScore(tc.followers); got != tc.want {
			t.Fatalf("followerScore(%d) = %d, want %d", tc.followers, got, tc.want)
		}
	}
}

func TestForkScore(t *testing.T) {
	cases := []struct {
		forks int
		want  int
	}{
		{forks: 0, want: 0},
		{forks: 3, want: 3},
		{forks: 5, want: 5},
		{forks: 8, want: 5},
		{forks: 15, want: 7},
		{forks: 25, want: 10},
	}

	for _, tc := range cases {
		if got := forkScore(tc.forks); got != tc.want {
			t.Fatalf("forkScore(%d) = %d, want %d", tc.forks, got, tc.want)
		}
	}
}

func TestRating(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{score: 100, want: RatingExceptional},
		{score: 80, want: RatingExceptional},
		{score: 79, want: RatingStrong},
		{score: 60, want: RatingStrong},
		{score: 59, want: RatingGood},
		{score: 40, want: RatingGood},
		{score: 39, want: RatingModerate},
		{score: 20, want: RatingModerate},
		{score: 19, want: RatingBeginner},
		{score: 0, want: RatingBeginner},
	}

	for _, tc := range cases {
		if got := Rating(tc.score); got != tc.want {
			t.Fatalf("Rating(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestCalculateScore(t *testing.T) {
	profile := &ProfileInfo{Username: "octocat", Followers: 10}
	stats := &RepositoryStats{
		TotalRepos: 10,
		TotalStars: 60,
		TotalForks: 12,
		Languages:  map[string]int{"Go": 5, "Python": 3, "Shell": 2},
	}

	score := CalculateScore(profile, stats)

	breakdown := score.Breakdown
	if breakdown.Repositories != 20 {
		t.Fatalf("expected repository component 20, got %d", breakdown.Repositories)
	}
	if breakdown.Stars != 20 {
		t.Fatalf("expected star component 20, got %d", breakdown.Stars)
	}
	if breakdown.LanguageDiversity != 12 {
		t.Fatalf("expected language component 12, got %d", breakdown.LanguageDiversity)
	}
	if breakdown.Followers != 5 {
		t.Fatalf("expected follower component 5, got %d", breakdown.Followers)
	}
	if breakdown.Forks != 7 {
		t.Fatalf("expected fork component 7, got %d", breakdown.Forks)
	}

	if score.TotalScore != 64 {
		t.Fatalf("expected total 64, got %d", score.TotalScore)
	}
	if score.MaxScore != 100 {
		t.Fatalf("expected max score 100, got %d", score.MaxScore)
	}
	if score.Percentage != 64.0 {
		t.Fatalf("expected percentage 64.0, got %v", score.Percentage)
	}
	if score.Rating != RatingStrong {
		t.Fatalf("expected rating %q, got %q", RatingStrong, score.Rating)
	}
}

func TestCalculateScoreClampsNegativeInputs(t *testing.T) {
	profile := &ProfileInfo{Username: "broken", Followers: -3}
	stats := &RepositoryStats{
		TotalRepos: -1,
		TotalStars: -10,
		TotalForks: -5,
		Languages:  map[string]int{},
	}

	score := CalculateScore(profile, stats)

	if score.TotalScore != 0 {
		t.Fatalf("expected total 0, got %d", score.TotalScore)
	}
	if score.Rating != RatingBeginner {
		t.Fatalf("expected rating %q, got %q", RatingBeginner, score.Rating)
	}
}
