package github

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	apiURL    = "https://api.github.com"
	userAgent = "skillsift/candidate-screener"
	// Max value GitHub allows per page.
	perPage = 100
)

// ErrUserNotFound indicates the requested GitHub account does not exist.
var ErrUserNotFound = errors.New("github user not found")

// Client is a minimal GitHub REST API client. A token is optional: without one
// requests run unauthenticated with lower rate limits, which is degraded
// throughput, not an error.
type Client struct {
	// ctx used only for http requests right now
	ctx        context.Context
	token      string
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
}

func New(ctx context.Context, logger *zap.Logger, token string) *Client {
	return &Client{
		ctx:    ctx,
		token:  token,
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger:    logger,
		UserAgent: userAgent,
	}
}

// Authenticated reports whether the client carries a token.
func (c *Client) Authenticated() bool {
	return c.token != ""
}
