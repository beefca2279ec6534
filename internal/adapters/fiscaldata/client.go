// Package fiscaldata reads historical exchange rates from the U.S. Treasury FiscalData
// "Rates of Exchange" dataset.
package fiscaldata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/purchase_transactions/internal/apperrors"
	"github.com/SscSPs/purchase_transactions/internal/core/domain"
	portsrepo "github.com/SscSPs/purchase_transactions/internal/core/ports/repositories"
	"github.com/SscSPs/purchase_transactions/internal/models"
	"github.com/SscSPs/purchase_transactions/internal/utils/conversion"
	"github.com/SscSPs/purchase_transactions/internal/utils/mapping"
)

const (
	DefaultBaseURL  = "https://api.fiscaldata.treasury.gov/services/api/fiscal_service/v1/accounting/od/rates_of_exchange"
	DefaultTimeout  = 10 * time.Second
	DefaultPageSize = 1000

	// maxPages bounds how far a single lookup follows pagination.
	maxPages = 20

	fields = "country_currency_desc,exchange_rate,effective_date,record_date"
)

// Config holds the settings of the FiscalData client. Zero values fall back to the defaults above.
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	PageSize int
}

// Client implements portsrepo.ExchangeRateReader over HTTP.
type Client struct {
	baseURL    string
	pageSize   int
	httpClient *http.Client
	logger     *slog.Logger
}

// Ensure implementation matches interface
var _ portsrepo.ExchangeRateReader = (*Client)(nil)

// NewClient creates a FiscalData client.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		pageSize: cfg.PageSize,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// FetchRates returns every published rate for currency whose effective date is on or after
// minEffectiveDate. A response without any rows is reported as ErrRatesUnavailable.
func (c *Client) FetchRates(ctx context.Context, currency string, minEffectiveDate time.Time) ([]domain.ExchangeRate, error) {
	logger := c.logger.With(
		slog.String("currency", currency),
		slog.String("min_effective_date", conversion.FormatDate(minEffectiveDate)),
	)

	var records []models.ExchangeRate
	for page := 1; page <= maxPages; page++ {
		resp, err := c.fetchPage(ctx, currency, minEffectiveDate, page)
		if err != nil {
			logger.ErrorContext(ctx, "Exchange rate lookup failed", slog.Int("page", page), slog.String("error", err.Error()))
			return nil, err
		}
		records = append(records, resp.Data...)
		if resp.Meta.TotalPages <= page || resp.Links.Next == nil {
			break
		}
	}

	if len(records) == 0 {
		logger.WarnContext(ctx, "Exchange rate source returned no data")
		return nil, apperrors.NewRatesUnavailableError(
			fmt.Sprintf("No exchange rate data available for %s", currency), nil)
	}

	rates, err := mapping.ToDomainExchangeRateSlice(records)
	if err != nil {
		return nil, apperrors.NewRatesUnavailableError("Exchange rate service returned malformed data", err)
	}

	logger.DebugContext(ctx, "Exchange rates fetched", slog.Int("count", len(rates)))
	return rates, nil
}

func (c *Client) fetchPage(ctx context.Context, currency string, minEffectiveDate time.Time, page int) (*models.ExchangeRatePage, error) {
	reqURL := c.buildURL(currency, minEffectiveDate, page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperrors.NewRatesUnavailableError("Failed to build exchange rate request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewRatesUnavailableError("Exchange rate service unreachable", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, apperrors.NewRatesUnavailableError(
			"Exchange rate service returned an error",
			fmt.Errorf("API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		)
	}

	var pageResp models.ExchangeRatePage
	if err := json.NewDecoder(resp.Body).Decode(&pageResp); err != nil {
		return nil, apperrors.NewRatesUnavailableError("Exchange rate service returned malformed data",
			fmt.Errorf("failed to decode response: %w", err))
	}
	return &pageResp, nil
}

// buildURL renders the dataset query for one page.
func (c *Client) buildURL(currency string, minEffectiveDate time.Time, page int) string {
	filter := fmt.Sprintf("country_currency_desc:in:(%s),effective_date:gte:%s",
		currency, conversion.FormatDate(minEffectiveDate))

	q := url.Values{}
	q.Set("fields", fields)
	q.Set("filter", filter)
	q.Set("sort", "-effective_date")
	q.Set("page[size]", strconv.Itoa(c.pageSize))
	q.Set("page[number]", strconv.Itoa(page))

	return c.baseURL + "?" + q.Encode()
}
