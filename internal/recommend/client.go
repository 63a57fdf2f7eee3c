// Package recommend looks up exercise suggestions for a target muscle
// group against the ExerciseDB catalog.
package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/coachpeter/coach-peter-api/internal/apperr"
	log "github.com/sirupsen/logrus"
)

// Exercise is one descriptor returned by ExerciseDB.
type Exercise struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BodyPart  string `json:"bodyPart"`
	Target    string `json:"target"`
	Equipment string `json:"equipment"`
	GifURL    string `json:"gifUrl"`
}

type Client struct {
	baseEndpoint string
	apiKey       string
	apiHost      string
	httpClient   *http.Client
}

// NewClient builds a lookup client. The bounded wait lives on httpClient's
// Timeout; the client performs no caching and no retries, callers decide
// retry policy.
func NewClient(baseEndpoint, apiKey string, httpClient *http.Client) *Client {
	apiHost := ""
	if u, err := url.Parse(baseEndpoint); err == nil {
		apiHost = u.Host
	}
	return &Client{
		baseEndpoint: strings.TrimRight(baseEndpoint, "/"),
		apiKey:       apiKey,
		apiHost:      apiHost,
		httpClient:   httpClient,
	}
}

// Recommend fetches the exercises for a body part. It returns
// apperr.ErrUpstreamTimeout when the bounded wait is exceeded,
// *apperr.UpstreamError for any other remote failure, and
// apperr.ErrEmptyResult when the catalog legitimately has nothing for
// the target.
func (c *Client) Recommend(ctx context.Context, target string) ([]Exercise, error) {
	if strings.TrimSpace(target) == "" {
		return nil, apperr.Validationf("target must be a non-empty string")
	}

	lookupURL := fmt.Sprintf("%s/exercises/bodyPart/%s", c.baseEndpoint, url.PathEscape(target))
	log.Debugf("fetching exercise recommendations: %s", lookupURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create recommendation request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.apiHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
			log.Errorf("recommendation lookup for %q timed out: %s", target, err)
			return nil, fmt.Errorf("%w: %s", apperr.ErrUpstreamTimeout, err)
		}
		return nil, &apperr.UpstreamError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Errorf("recommendation lookup for %q failed with status %d", target, resp.StatusCode)
		return nil, &apperr.UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var exercises []Exercise
	if err := json.NewDecoder(resp.Body).Decode(&exercises); err != nil {
		return nil, &apperr.UpstreamError{Message: fmt.Sprintf("malformed payload: %s", err)}
	}

	if len(exercises) == 0 {
		log.Warnf("no exercises found for body part %q", target)
		return nil, fmt.Errorf("%w for body part %q", apperr.ErrEmptyResult, target)
	}

	log.Infof("found %d exercises for body part %q", len(exercises), target)
	return exercises, nil
}
