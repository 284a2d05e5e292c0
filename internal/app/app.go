package app

import (
	"fmt"

	"github.com/riskibarqy/cricket-feed/external/cricbuzz"
	"github.com/riskibarqy/cricket-feed/internal/config"
	"github.com/riskibarqy/cricket-feed/internal/platform/httpclient"
	"github.com/riskibarqy/cricket-feed/internal/platform/logging"
)

// NewCricbuzzClient wires the http adapter and the cricbuzz mapper from config.
func NewCricbuzzClient(cfg config.Config, logger *logging.Logger) (*cricbuzz.Client, error) {
	if logger == nil {
		logger = logging.Default()
	}

	httpClient, err := httpclient.New(httpclient.Config{
		Timeout:            cfg.CricbuzzTimeout,
		UserAgent:          cfg.CricbuzzUserAgent,
		ProxyURL:           cfg.ProxyURL,
		InsecureSkipVerify: !cfg.CricbuzzVerifySSL,
		Logger:             logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build http client: %w", err)
	}

	client, err := cricbuzz.NewClient(cricbuzz.ClientConfig{
		HTTP:          httpClient,
		BaseURL:       cfg.CricbuzzBaseURL,
		SeriesBaseURL: cfg.CricbuzzSeriesURL,
		MatchWorkers:  cfg.CricbuzzMatchWorkers,
		Location:      cfg.CricbuzzLocation,
		Logger:        logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build cricbuzz client: %w", err)
	}

	logger.Debug("cricbuzz client ready",
		"base_url", cfg.CricbuzzBaseURL,
		"proxy", redactURL(cfg.ProxyURL),
		"timeout", cfg.CricbuzzTimeout.String(),
		"verify_ssl", cfg.CricbuzzVerifySSL,
		"match_workers", cfg.CricbuzzMatchWorkers,
	)
	return client, nil
}
