package screening

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/skillsift/skillsift/internal/github"

	"go.uber.org/zap"
)

func TestCombinedScore(t *testing.T) {
	cases := []struct {
		name        string
		totalSkills int
		githubScore int
		want        float64
	}{
		{name: "zero everything", totalSkills: 0, githubScore: 0, want: 0},
		{name: "resume only", totalSkills: 25, githubScore: 0, want: 20.0},
		{name: "github only", totalSkills: 0, githubScore: 50, want: 30.0},
		{name: "both sides", totalSkills: 25, githubScore: 80, want: 68.0},
		{name: "rounded to one decimal", totalSkills: 7, githubScore: 33, want: 25.4},
		{name: "resume score capped at ceiling", totalSkills: 80, githubScore: 0, want: 40.0},
		{name: "perfect", totalSkills: 50, githubScore: 100, want: 100.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CombinedScore(tc.totalSkills, tc.githubScore); got != tc.want {
				t.Fatalf("CombinedScore(%d, %d) = %v, want %v",
					tc.totalSkills, tc.githubScore, got, tc.want)
			}
		})
	}
}

func TestRank(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/octocat":
			fmt.Fprint(w, `{"login": "octocat", "followers": 10}`)
		case "/users/octocat/repos":
			fmt.Fprint(w, `[
				{"name": "api", "language": "Go", "stargazers_count": 40, "forks_count": 8},
				{"name": "scripts", "language": "Python", "stargazers_count": 21, "forks_count": 4}
			]`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := github.New(context.Background(), zap.NewNop(), "")
	client.APIURL = server.URL
	analyzer := github.NewAnalyzer(client, zap.NewNop())

	dir := t.TempDir()
	writeDocx(t, filepath.Join(dir, "alice.docx"), "Go developer")
	writeDocx(t, filepath.Join(dir, "bob.docx"), "Go developer")
	writeDocx(t, filepath.Join(dir, "carol.docx"), "Go developer")

	stub := &stubGenerator{response: `{"programming_languages": ["Go", "Python", "Rust", "SQL", "Bash"]}`}
	ranker := NewRanker(newStubRunner(stub), analyzer, zap.NewNop())

	usernames := map[string]string{
		"alice.docx": "octocat",
		"carol.docx": "ghost", // unknown account, analysis fails
	}

	candidates, err := ranker.Rank(context.Background(), dir, usernames)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(candidates) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(candidates))
	}

	// alice: 5 skills and a linked profile. repos 2*2=4, stars 61 -> 20,
	// languages 2*4=8, followers 10/2=5, forks 12 -> 7; github score 44.
	// combined: 0.4*10 + 0.6*44 = 30.4.
	first := candidates[0]
	if first.Filename != "alice.docx" {
		t.Fatalf("expected alice first, got %q", first.Filename)
	}
	if first.GithubScore != 44 {
		t.Fatalf("expected github score 44, got %d", first.GithubScore)
	}
	if first.CombinedScore != 30.4 {
		t.Fatalf("expected combined score 30.4, got %v", first.CombinedScore)
	}
	if first.GithubAnalysis == nil {
		t.Fatalf("expected github analysis to be attached")
	}

	// bob and carol tie at the resume-only score; ties keep listing order.
	second, third := candidates[1], candidates[2]
	if second.Filename != "bob.docx" || third.Filename != "carol.docx" {
		t.Fatalf("unexpected tie order: %q then %q", second.Filename, third.Filename)
	}
	for _, candidate := range []*Candidate{second, third} {
		if candidate.CombinedScore != 4.0 {
			t.Fatalf("expected combined score 4.0 for %q, got %v", candidate.Filename, candidate.CombinedScore)
		}
		if candidate.GithubAnalysis != nil {
			t.Fatalf("expected no analysis for %q", candidate.Filename)
		}
	}

	// The failed lookup never aborts the ranking, carol just keeps zero.
	if third.GithubUsername != "ghost" || third.GithubScore != 0 {
		t.Fatalf("unexpected failed-lookup candidate: %+v", third)
	}
}

func TestRankSkipsFailedResumes(t *testing.T) {
	dir := t.TempDir()
	writeDocx(t, filepath.Join(dir, "alice.docx"), "Go developer")
	if err := os.WriteFile(filepath.Join(dir, "broken.pdf"), []byte("not a pdf"), 0o644); err != nil {
		t.Fatalf("writing broken pdf: %v", err)
	}

	stub := &stubGenerator{response: `{"programming_languages": ["Go"]}`}
	ranker := NewRanker(newStubRunner(stub), nil, zap.NewNop())

	candidates, err := ranker.Rank(context.Background(), dir, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}
	if candidates[0].Filename != "alice.docx" {
		t.Fatalf("unexpected candidate: %q", candidates[0].Filename)
	}
}

func TestRankMissingDirectory(t *testing.T) {
	ranker := NewRanker(newStubRunner(&stubGenerator{}), nil, zap.NewNop())

	_, err := ranker.Rank(context.Background(), filepath.Join(t.TempDir(), "missing"), nil)
	if err == nil {
		t.Fatalf("expected an error for a missing directory")
	}
}
