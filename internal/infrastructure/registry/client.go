package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"vg-ms-user/config"
	"vg-ms-user/internal/domain/registry"
)

type Client struct {
	institutionURL string
	headquarterURL string
	http           *http.Client
	log            *zap.Logger
}

func New(cfg config.Registry, logger *zap.Logger) *Client {
	return NewWithHTTPClient(cfg, &http.Client{Timeout: cfg.Timeout}, logger)
}

func NewWithHTTPClient(cfg config.Registry, hc *http.Client, logger *zap.Logger) *Client {
	return &Client{
		institutionURL: strings.TrimRight(cfg.InstitutionURL, "/"),
		headquarterURL: strings.TrimRight(cfg.HeadquarterURL, "/"),
		http:           hc,
		log:            logger,
	}
}

type (
	institutionResponse struct {
		ID             string   `json:"id"`
		Name           string   `json:"institutionName"`
		CodeName       string   `json:"codeName"`
		ModularCode    string   `json:"modularCode"`
		Address        string   `json:"address"`
		ContactEmail   string   `json:"contactEmail"`
		ContactPhone   string   `json:"contactPhone"`
		Status         string   `json:"status"`
		HeadquarterIDs []string `json:"headquarterIds"`
	}
	headquarterResponse struct {
		ID            string `json:"id"`
		InstitutionID string `json:"institutionId"`
		Name          string `json:"headquartersName"`
		Code          string `json:"headquartersCode"`
		Address       string `json:"address"`
		ContactPerson string `json:"contactPerson"`
		ContactEmail  string `json:"contactEmail"`
		ContactPhone  string `json:"contactPhone"`
		Status        string `json:"status"`
	}
)

// FetchInstitution returns (nil, nil) when the registry has no such institution.
func (c *Client) FetchInstitution(ctx context.Context, id string) (*registry.Institution, error) {
	if id == "" {
		return nil, nil
	}

	var r institutionResponse
	found, err := c.get(ctx, c.institutionURL+"/institutions/"+url.PathEscape(id), &r)
	if err != nil || !found {
		return nil, err
	}

	return &registry.Institution{
		ID:             r.ID,
		Name:           r.Name,
		CodeName:       r.CodeName,
		ModularCode:    r.ModularCode,
		Address:        r.Address,
		ContactEmail:   r.ContactEmail,
		ContactPhone:   r.ContactPhone,
		Status:         registry.StatusCode(r.Status),
		HeadquarterIDs: r.HeadquarterIDs,
	}, nil
}

// FetchHeadquarter returns (nil, nil) when the registry has no such headquarter.
func (c *Client) FetchHeadquarter(ctx context.Context, id string) (*registry.Headquarter, error) {
	if id == "" {
		return nil, nil
	}

	var r headquarterResponse
	found, err := c.get(ctx, c.headquarterURL+"/headquarters/"+url.PathEscape(id), &r)
	if err != nil || !found {
		return nil, err
	}

	return &registry.Headquarter{
		ID:            r.ID,
		InstitutionID: r.InstitutionID,
		Name:          r.Name,
		Code:          r.Code,
		Address:       r.Address,
		ContactPerson: r.ContactPerson,
		ContactEmail:  r.ContactEmail,
		ContactPhone:  r.ContactPhone,
		Status:        registry.StatusCode(r.Status),
	}, nil
}

func (c *Client) get(ctx context.Context, target string, out any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return false, fmt.Errorf("registry: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("registry: GET %s: %w", target, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Warn("registry call failed",
			zap.String("url", target),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body),
		)
		return false, fmt.Errorf("registry: GET %s: unexpected status %d", target, resp.StatusCode)
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("registry: decode %s: %w", target, err)
	}

	return true, nil
}
