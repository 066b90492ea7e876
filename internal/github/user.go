package github

import "fmt"

// User holds the public profile attributes of a GitHub account.
type User struct {
	Login       string `json:"login,omitempty"`
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

// GetUser fetches the profile for the provided username.
func (c *Client) GetUser(username string) (*User, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	requestURL := fmt.Sprintf("%s/users/%s", c.APIURL, username)

	var user *User
	if err := c.getJSON(requestURL, nil, &user); err != nil {
		return nil, err
	}

	return user, nil
}
