// Package sheets downloads the published lookup tables from the hosted
// spreadsheet document and turns them into a catalog.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dverhagen/namesmith/internal/importer"
	"github.com/dverhagen/namesmith/internal/model"
)

type Options struct {
	DocID      string
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Tables names the three sheets of the source document.
type Tables struct {
	Hierarchy string
	Mediums   string
	Materials string
}

type Client struct {
	docID      string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://docs.google.com/spreadsheets/d"
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = NewHTTPClient(0)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		docID:      strings.TrimSpace(opts.DocID),
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// NewHTTPClient returns an http.Client tuned for the short CSV downloads
// the published document serves.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 15 * time.Second,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// FetchTable downloads one sheet of the source document as CSV.
func (c *Client) FetchTable(ctx context.Context, sheet string) ([]byte, error) {
	if c.docID == "" {
		return nil, errors.New("source document ID is not set")
	}

	u := fmt.Sprintf("%s/%s/gviz/tq?tqx=out:csv&sheet=%s",
		c.baseURL, url.PathEscape(c.docID), url.QueryEscape(sheet))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", sheet, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", sheet, err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch %s: %s", sheet, resp.Status)
	}

	return body, nil
}

// FetchCatalog downloads the three lookup tables concurrently and builds
// the catalog. The load is all or nothing: a failed download or an empty
// hierarchy aborts it with an error, and the caller keeps whatever
// catalog it already had.
func (c *Client) FetchCatalog(ctx context.Context, tables Tables) (*model.Catalog, []string, error) {
	names := []string{tables.Hierarchy, tables.Mediums, tables.Materials}
	payloads := make([][]byte, len(names))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, sheet := range names {
		eg.Go(func() error {
			data, err := c.FetchTable(egCtx, sheet)
			if err != nil {
				return err
			}
			payloads[i] = data
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		c.logger.Error("table download failed", "err", err)
		return nil, nil, fmt.Errorf("load lookup tables: %w", err)
	}

	result := importer.BuildCatalog(payloads[0], payloads[1], payloads[2])
	if !result.Ok() {
		return nil, result.Warnings, fmt.Errorf("load lookup tables: %s", strings.Join(result.Errors, "; "))
	}
	if result.Catalog.IsEmpty() {
		return nil, result.Warnings, errors.New("load lookup tables: hierarchy table is empty")
	}

	c.logger.Info("lookup tables loaded",
		"clients", len(result.Catalog.Clients),
		"mediums", len(result.Catalog.Mediums),
		"materials", len(result.Catalog.Materials),
		"warnings", len(result.Warnings))

	return result.Catalog, result.Warnings, nil
}
