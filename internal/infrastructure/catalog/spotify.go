package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mirola777/songboard/internal/domain"
	"github.com/mirola777/songboard/internal/infrastructure/metrics"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const defaultRefreshMargin = 60 * time.Second

var trackURLPattern = regexp.MustCompile(`track/([A-Za-z0-9]+)`)

type Config struct {
	ClientID      string
	ClientSecret  string
	TokenURL      string
	APIURL        string
	Timeout       time.Duration
	SearchLimit   int
	RetryInterval time.Duration
	RefreshMargin time.Duration
}

// SpotifyClient talks to the Spotify Web API with an app-only token
// obtained through the client-credentials grant.
type SpotifyClient struct {
	cfg  Config
	http *resty.Client

	mu      sync.Mutex
	token   string
	timer   *time.Timer
	stopped bool
}

func NewSpotifyClient(cfg Config) *SpotifyClient {
	if cfg.RefreshMargin <= 0 {
		cfg.RefreshMargin = defaultRefreshMargin
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = 30 * time.Second
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = 20
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.APIURL, "/")).
		SetTimeout(cfg.Timeout)

	return &SpotifyClient{cfg: cfg, http: client}
}

// Start fetches the first token and keeps refreshing it in the background.
// The returned error only reports the first attempt; retries are scheduled
// either way.
func (c *SpotifyClient) Start() error {
	return c.refreshAndSchedule()
}

func (c *SpotifyClient) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped = true
	if c.timer != nil {
		c.timer.Stop()
	}
}

func (c *SpotifyClient) SearchByName(ctx context.Context, text string) ([]domain.Track, error) {
	resp, err := c.get(ctx, "/search", nil, map[string]string{
		"q":     text,
		"type":  "track",
		"limit": strconv.Itoa(c.cfg.SearchLimit),
	})
	if err != nil {
		return nil, fmt.Errorf("catalog search: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("catalog search: unexpected status %d", resp.StatusCode())
	}

	items := gjson.GetBytes(resp.Body(), "tracks.items").Array()
	tracks := make([]domain.Track, 0, len(items))
	for _, item := range items {
		tracks = append(tracks, trackFromJSON(item))
	}
	return tracks, nil
}

func (c *SpotifyClient) GetByID(ctx context.Context, trackID string) (*domain.Track, error) {
	resp, err := c.get(ctx, "/tracks/{id}", map[string]string{"id": trackID}, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog get track: %w", err)
	}
	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusBadRequest:
		return nil, domain.ErrCatalogTrackNotFound
	default:
		return nil, fmt.Errorf("catalog get track: unexpected status %d", resp.StatusCode())
	}

	track := trackFromJSON(gjson.ParseBytes(resp.Body()))
	return &track, nil
}

// ParseTrackURL extracts the track id from a share link such as
// https://open.spotify.com/track/7qiZfU4dY1lWllzX7mPBI3?si=...
func ParseTrackURL(url string) (string, bool) {
	m := trackURLPattern.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// get retries once with a fresh token when the API answers 401.
func (c *SpotifyClient) get(ctx context.Context, path string, pathParams, query map[string]string) (*resty.Response, error) {
	resp, err := c.send(ctx, path, pathParams, query)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusUnauthorized {
		return resp, nil
	}

	logrus.WithField("path", path).Warn("catalog token rejected, refreshing")
	if _, err := c.refreshToken(ctx); err != nil {
		return nil, fmt.Errorf("refresh token after 401: %w", err)
	}
	return c.send(ctx, path, pathParams, query)
}

func (c *SpotifyClient) send(ctx context.Context, path string, pathParams, query map[string]string) (*resty.Response, error) {
	req := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.currentToken())
	if pathParams != nil {
		req.SetPathParams(pathParams)
	}
	if query != nil {
		req.SetQueryParams(query)
	}
	return req.Get(path)
}

func (c *SpotifyClient) currentToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *SpotifyClient) refreshToken(ctx context.Context) (time.Duration, error) {
	expiresIn, err := c.requestToken(ctx)
	metrics.RecordTokenRefresh(err)
	return expiresIn, err
}

func (c *SpotifyClient) requestToken(ctx context.Context) (time.Duration, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret).
		SetFormData(map[string]string{"grant_type": "client_credentials"}).
		Post(c.cfg.TokenURL)
	if err != nil {
		return 0, fmt.Errorf("token request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return 0, fmt.Errorf("token request: unexpected status %d: %s",
			resp.StatusCode(), gjson.GetBytes(resp.Body(), "error_description").String())
	}

	body := gjson.ParseBytes(resp.Body())
	token := body.Get("access_token").String()
	if token == "" {
		return 0, errors.New("token response without access_token")
	}

	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	return time.Duration(body.Get("expires_in").Int()) * time.Second, nil
}

func (c *SpotifyClient) refreshAndSchedule() error {
	ctx, cancel := context.WithTimeout(context.Background(), c.cfg.Timeout)
	defer cancel()

	expiresIn, err := c.refreshToken(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to refresh catalog token")
	}
	c.schedule(nextRefreshIn(expiresIn, err, c.cfg.RefreshMargin, c.cfg.RetryInterval))
	return err
}

func (c *SpotifyClient) schedule(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(d, func() {
		_ = c.refreshAndSchedule()
	})
}

func nextRefreshIn(expiresIn time.Duration, err error, margin, retry time.Duration) time.Duration {
	if err != nil {
		return retry
	}
	next := expiresIn - margin
	if next <= 0 {
		next = expiresIn / 2
	}
	if next <= 0 {
		return retry
	}
	return next
}

func trackFromJSON(v gjson.Result) domain.Track {
	artists := v.Get("artists.#.name").Array()
	names := make([]string, 0, len(artists))
	for _, a := range artists {
		names = append(names, a.String())
	}

	return domain.Track{
		ID:            v.Get("id").String(),
		Title:         v.Get("name").String(),
		ArtistName:    strings.Join(names, ", "),
		CoverImageURL: v.Get("album.images.0.url").String(),
	}
}
