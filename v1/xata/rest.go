package xata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// restClient is the default API implementation, speaking the backend's
// HTTP interface directly. One instance corresponds to one database
// branch; all table paths are resolved relative to the configured
// database URL.
type restClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func newRESTClient(cfg *Config) *restClient {
	// Remove trailing slash if user added it.
	base := strings.TrimRight(cfg.DatabaseURL, "/")

	return &restClient{
		baseURL:    base,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

func (c *restClient) GetUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodGet, "/user", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *restClient) CreateTable(ctx context.Context, table string) error {
	return c.doJSON(ctx, http.MethodPut, "/tables/"+url.PathEscape(table), nil, nil)
}

func (c *restClient) DeleteTable(ctx context.Context, table string) error {
	return c.doJSON(ctx, http.MethodDelete, "/tables/"+url.PathEscape(table), nil, nil)
}

func (c *restClient) SetTableSchema(ctx context.Context, table string, schema TableSchema) error {
	return c.doJSON(ctx, http.MethodPut, "/tables/"+url.PathEscape(table)+"/schema", schema, nil)
}

func (c *restClient) GetTableColumns(ctx context.Context, table string) ([]SchemaColumn, error) {
	var parsed struct {
		Columns []SchemaColumn `json:"columns"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/tables/"+url.PathEscape(table)+"/columns", nil, &parsed); err != nil {
		return nil, err
	}
	return parsed.Columns, nil
}

func (c *restClient) GetBranchDetails(ctx context.Context) (*BranchDetails, error) {
	var details BranchDetails
	if err := c.doJSON(ctx, http.MethodGet, "", nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (c *restClient) InsertRecord(ctx context.Context, table string, record map[string]any, columns []string) (*RecordMeta, error) {
	path := "/tables/" + url.PathEscape(table) + "/data" + columnsQuery(columns)

	var meta RecordMeta
	if err := c.doJSON(ctx, http.MethodPost, path, record, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (c *restClient) InsertRecordWithID(ctx context.Context, table, id string, record map[string]any, createOnly bool, columns []string) (*RecordMeta, error) {
	q := url.Values{}
	if createOnly {
		q.Set("createOnly", "true")
	}
	if len(columns) > 0 {
		q.Set("columns", strings.Join(columns, ","))
	}
	path := "/tables/" + url.PathEscape(table) + "/data/" + url.PathEscape(id)
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var meta RecordMeta
	if err := c.doJSON(ctx, http.MethodPut, path, record, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (c *restClient) BulkInsert(ctx context.Context, table string, records []map[string]any) error {
	body := map[string]any{"records": records}
	return c.doJSON(ctx, http.MethodPost, "/tables/"+url.PathEscape(table)+"/bulk", body, nil)
}

func (c *restClient) VectorSearch(ctx context.Context, table string, req VectorSearchRequest) (*VectorSearchResponse, error) {
	var parsed VectorSearchResponse
	if err := c.doJSON(ctx, http.MethodPost, "/tables/"+url.PathEscape(table)+"/vectorSearch", req, &parsed); err != nil {
		return nil, err
	}
	return &parsed, nil
}

func (c *restClient) Query(ctx context.Context, table string, req QueryRequest) (*QueryResponse, error) {
	var parsed QueryResponse
	if err := c.doJSON(ctx, http.MethodPost, "/tables/"+url.PathEscape(table)+"/query", req, &parsed); err != nil {
		return nil, err
	}
	return &parsed, nil
}

func (c *restClient) DeleteRecords(ctx context.Context, table string, ids []string, filter map[string]any) error {
	body := map[string]any{}
	if len(ids) > 0 {
		body["ids"] = ids
	}
	if len(filter) > 0 {
		body["filter"] = filter
	}
	return c.doJSON(ctx, http.MethodPost, "/tables/"+url.PathEscape(table)+"/delete", body, nil)
}

// doJSON sends one HTTP request to the backend. It marshals the given
// body as JSON, attaches the API key, converts non-2xx responses into
// errors carrying the backend's message, and optionally decodes the
// response JSON into out.
func (c *restClient) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return decodeHTTPError(resp, method, path)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}

	return nil
}

// decodeHTTPError extracts the backend's message from an error body.
func decodeHTTPError(resp *http.Response, method, path string) error {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err == nil && parsed.Message != "" {
		return fmt.Errorf("http %d for %s %s: %s", resp.StatusCode, method, path, parsed.Message)
	}
	return fmt.Errorf("http %d for %s %s", resp.StatusCode, method, path)
}

func columnsQuery(columns []string) string {
	if len(columns) == 0 {
		return ""
	}
	q := url.Values{}
	q.Set("columns", strings.Join(columns, ","))
	return "?" + q.Encode()
}
