package github

import (
	"fmt"
	"sort"

	"github.com/mitchellh/mapstructure"
)

// Repository is a single repository as returned by the GitHub API.
// Description and language come back as null for many repositories, hence the
// pointers.
type Repository struct {
	Name            string  `json:"name,omitempty"`
	Description     *string `json:"description,omitempty"`
	Language        *string `json:"language,omitempty"`
	StargazersCount int     `json:"stargazers_count"`
	ForksCount      int     `json:"forks_count"`
	HTMLURL         string  `json:"html_url,omitempty"`
	Fork            bool    `json:"fork,omitempty"`
}

type Repositories struct {
	Items []*Repository
}

// GetRepositories fetches the full repository list for the provided username.
func (c *Client) GetRepositories(username string) (*Repositories, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	requestURL := fmt.Sprintf("%s/users/%s/repos", c.APIURL, username)

	items, err := c.GetItems(requestURL, nil)
	if err != nil {
		return nil, err
	}

	var repositories []*Repository
	cfg := &mapstructure.DecoderConfig{
		Result:  &repositories,
		TagName: "json",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(items); err != nil {
		return nil, fmt.Errorf("decode repositories: %w", err)
	}

	return &Repositories{Items: repositories}, nil
}

func (r *Repositories) Len() int {
	return len(r.Items)
}

// TopByStars returns the n highest-starred repositories. Ties keep the
// original API ordering.
func (r *Repositories) TopByStars(n int) []*Repository {
	sorted := make([]*Repository, len(r.Items))
	copy(sorted, r.Items)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StargazersCount > sorted[j].StargazersCount
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
