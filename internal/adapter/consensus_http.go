// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/helios-keeper/internal/logger"
	"github.com/MKhiriev/helios-keeper/internal/utils"
	"github.com/MKhiriev/helios-keeper/models"
)

const (
	bootstrapPath        = "/eth/v1/beacon/light_client/bootstrap/{block_root}"
	finalityUpdatePath   = "/eth/v1/beacon/light_client/finality_update"
	optimisticUpdatePath = "/eth/v1/beacon/light_client/optimistic_update"
)

type httpConsensusAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPConsensusAdapter constructs a resty-backed [ConsensusAdapter] for the
// beacon node at baseURL. Every request is bounded by timeout.
func NewHTTPConsensusAdapter(baseURL string, timeout time.Duration, logger *logger.Logger) (ConsensusAdapter, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: consensus rpc: %w", ErrInvalidURL, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(normalized).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &httpConsensusAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("address must include host")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (a *httpConsensusAdapter) Bootstrap(ctx context.Context, root common.Hash) (models.LightClientBootstrap, error) {
	var out models.BeaconResponse[models.LightClientBootstrap]
	if err := a.get(ctx, bootstrapPath, map[string]string{"block_root": root.Hex()}, &out); err != nil {
		return models.LightClientBootstrap{}, fmt.Errorf("bootstrap %s: %w", root.Hex(), err)
	}
	return out.Data, nil
}

func (a *httpConsensusAdapter) FinalityUpdate(ctx context.Context) (models.LightClientFinalityUpdate, error) {
	var out models.BeaconResponse[models.LightClientFinalityUpdate]
	if err := a.get(ctx, finalityUpdatePath, nil, &out); err != nil {
		return models.LightClientFinalityUpdate{}, fmt.Errorf("finality update: %w", err)
	}
	return out.Data, nil
}

func (a *httpConsensusAdapter) OptimisticUpdate(ctx context.Context) (models.LightClientOptimisticUpdate, error) {
	var out models.BeaconResponse[models.LightClientOptimisticUpdate]
	if err := a.get(ctx, optimisticUpdatePath, nil, &out); err != nil {
		return models.LightClientOptimisticUpdate{}, fmt.Errorf("optimistic update: %w", err)
	}
	return out.Data, nil
}

func (a *httpConsensusAdapter) get(ctx context.Context, path string, params map[string]string, out any) error {
	req := a.client.R().SetContext(ctx)
	if params != nil {
		req.SetPathParams(params)
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		a.logger.Debug().Str("path", path).Int("status", resp.StatusCode()).Msg("beacon request failed")
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return nil
}
