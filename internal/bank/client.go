// Package bank provides a client for the external banking API.
//
// The API serves JSON:API-shaped collections of accounts, categories, and
// transactions, authenticated with a bearer token. Pagination is cursor
// based; cursors are treated as opaque and forwarded verbatim. There is no
// retry logic: any failure surfaces immediately to the caller.
package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "hearth/internal/errors"
)

// Client is the consumer-side contract for the banking API.
type Client interface {
	Accounts(ctx context.Context) ([]Account, error)
	Categories(ctx context.Context) ([]Category, error)
	ChildCategories(ctx context.Context, parentID string) ([]Category, error)
	Transactions(ctx context.Context, q TransactionQuery) (*TransactionPage, error)
	SetTransactionCategory(ctx context.Context, transactionID string, categoryID *string) error
}

// TransactionQuery holds the filters for a transaction page fetch. Since and
// Until are only sent when both are set. PageAfter/PageBefore are opaque
// cursors from a previous page's links.
type TransactionQuery struct {
	AccountID  string
	Since      *time.Time
	Until      *time.Time
	PageSize   int
	PageAfter  string
	PageBefore string
}

// HTTPClient is the production Client implementation.
type HTTPClient struct {
	baseURL  string
	token    string
	pageSize int
	client   *http.Client
}

// NewHTTPClient creates a banking API client. baseURL must end with the API
// version prefix (e.g. ".../api/v1/"). pageSize is the default page[size]
// for transaction fetches.
func NewHTTPClient(baseURL, token string, pageSize int) *HTTPClient {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if pageSize <= 0 {
		pageSize = 100
	}
	return &HTTPClient{
		baseURL:  baseURL,
		token:    token,
		pageSize: pageSize,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

type collectionEnvelope[T any] struct {
	Data  []T   `json:"data"`
	Links Links `json:"links"`
}

// Accounts fetches the full account collection.
func (c *HTTPClient) Accounts(ctx context.Context) ([]Account, error) {
	var env collectionEnvelope[Account]
	if err := c.get(ctx, "accounts", nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Categories fetches the full category collection, roots and children alike.
func (c *HTTPClient) Categories(ctx context.Context) ([]Category, error) {
	var env collectionEnvelope[Category]
	if err := c.get(ctx, "categories", nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// ChildCategories fetches the direct children of a root category.
func (c *HTTPClient) ChildCategories(ctx context.Context, parentID string) ([]Category, error) {
	query := url.Values{}
	query.Set("filter[parent]", parentID)

	var env collectionEnvelope[Category]
	if err := c.get(ctx, "categories", query, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Transactions fetches one page of transactions, scoped to an account when
// q.AccountID is set.
func (c *HTTPClient) Transactions(ctx context.Context, q TransactionQuery) (*TransactionPage, error) {
	path := "transactions"
	if q.AccountID != "" {
		path = "accounts/" + url.PathEscape(q.AccountID) + "/transactions"
	}

	size := q.PageSize
	if size <= 0 {
		size = c.pageSize
	}
	query := url.Values{}
	query.Set("page[size]", strconv.Itoa(size))
	if q.Since != nil && q.Until != nil {
		query.Set("filter[since]", q.Since.Format(time.RFC3339))
		query.Set("filter[until]", q.Until.Format(time.RFC3339))
	}
	if q.PageAfter != "" {
		query.Set("page[after]", q.PageAfter)
	}
	if q.PageBefore != "" {
		query.Set("page[before]", q.PageBefore)
	}

	var env collectionEnvelope[Transaction]
	if err := c.get(ctx, path, query, &env); err != nil {
		return nil, err
	}
	return &TransactionPage{Transactions: env.Data, Links: env.Links}, nil
}

// SetTransactionCategory re-assigns a bank transaction's category through the
// relationship endpoint. A nil categoryID clears the category. The bank
// responds 204 on success.
func (c *HTTPClient) SetTransactionCategory(ctx context.Context, transactionID string, categoryID *string) error {
	payload := map[string]interface{}{"data": nil}
	if categoryID != nil {
		payload["data"] = ResourceIdentifier{Type: "categories", ID: *categoryID}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	path := "transactions/" + url.PathEscape(transactionID) + "/relationships/category"
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return upstreamError(resp)
	}
	return nil
}

// get issues an authenticated GET and decodes the JSON response into out.
func (c *HTTPClient) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return upstreamError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrap(apperrors.ErrUpstreamUnavailable, err)
	}
	return nil
}

// upstreamError builds an AppError carrying the upstream status and, where
// available, the upstream response body.
func upstreamError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := fmt.Sprintf("banking API returned %d", resp.StatusCode)
	if trimmed := strings.TrimSpace(string(body)); trimmed != "" {
		msg = fmt.Sprintf("%s: %s", msg, trimmed)
	}
	return apperrors.WithMessage(apperrors.ErrUpstreamUnavailable, msg)
}
