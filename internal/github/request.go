package github

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

const acceptHeader = "application/vnd.github+json"

type Item map[string]any

// GetItems makes GET requests to the GitHub API and returns items from all
// pages. GitHub list endpoints return bare arrays, so pagination continues
// until a page comes back shorter than the page size.
func (c *Client) GetItems(requestURL string, q url.Values) ([]Item, error) {
	var items []Item

	if q == nil {
		q = url.Values{}
	}
	q.Set("per_page", strconv.Itoa(perPage))

	for page := 1; ; page++ {
		q.Set("page", strconv.Itoa(page))

		var pageItems []Item
		if err := c.getJSON(requestURL, q, &pageItems); err != nil {
			return nil, err
		}

		items = append(items, pageItems...)

		c.logger.Debug("got response page from github",
			zap.Int("page", page),
			zap.Int("items", len(pageItems)),
		)

		if len(pageItems) < perPage {
			break
		}
	}

	return items, nil
}

func (c *Client) getJSON(requestURL string, q url.Values, target any) error {
	req, err := http.NewRequestWithContext(c.ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return err
	}

	req = c.setHeaders(req)
	if q != nil {
		req.URL.RawQuery = q.Encode()
	}

	resp, err := c.request(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", requestURL, ErrUserNotFound)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad status: %s", resp.Status)
	}

	if target == nil {
		return nil
	}

	if err := json.Unmarshal(data, target); err != nil {
		return err
	}

	return nil
}

func (c *Client) request(req *http.Request) (*http.Response, error) {
	c.logger.Debug("make request", zap.String("url", req.URL.String()))
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *Client) setHeaders(req *http.Request) *http.Request {
	if c.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", acceptHeader)

	return req
}
