package capex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// Client talks to the spreadsheet-backed store. The store is a single web app
// endpoint: every operation is a POST of {"action": ..., ...payload} and
// every answer is {"status": "success", "data": ...} or a status/message
// pair. The body is sent as text/plain because the endpoint rejects
// preflighted content types.
type Client struct {
	URL        string
	HTTPClient *http.Client
}

// NewClient returns a client for the store deployed at url.
func NewClient(url string) *Client {
	return &Client{
		URL:        url,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// do posts one action and returns the response body after checking the store
// status envelope. fields may be nil for payload-less actions.
func (c *Client) do(ctx context.Context, action string, fields *jsonObjectWriter) ([]byte, error) {
	var w jsonObjectWriter
	w.Append("action", action)
	if fields != nil {
		w.EmbedFrom(fields)
	}
	payload, err := w.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encoding %s request: %w", action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating %s request: %w", action, err)
	}
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("posting %s: %w", action, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", action, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s returned %s: %w", action, resp.Status,
			&InvalidResponseError{Reason: "unexpected HTTP status", Snippet: snippet(body)})
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &InvalidResponseError{Reason: "body is not JSON", Snippet: snippet(body)}
	}
	status, err := jsonpath.Get("$.status", doc)
	if err != nil {
		return nil, &InvalidResponseError{Reason: "missing status field", Snippet: snippet(body)}
	}
	if status != "success" {
		msg, _ := jsonpath.Get("$.message", doc)
		message, _ := msg.(string)
		return nil, &RemoteError{Action: action, Message: message}
	}
	return body, nil
}

func snippet(body []byte) string {
	const max = 120
	s := string(bytes.TrimSpace(body))
	if len(s) > max {
		s = s[:max]
	}
	return s
}

// GetData fetches the complete snapshot. It validates the shape of the data
// node before the typed decode so that a half-broken deployment fails with a
// pointed message rather than a zero-value snapshot.
func (c *Client) GetData(ctx context.Context) (*Snapshot, error) {
	body, err := c.do(ctx, "getData", nil)
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &InvalidResponseError{Reason: "body is not JSON", Snippet: snippet(body)}
	}
	for _, path := range []string{"$.data.projects", "$.data.orderDetails", "$.data.globalBudgets"} {
		node, err := jsonpath.Get(path, doc)
		if err != nil {
			return nil, &InvalidResponseError{Reason: path + " is missing", Snippet: snippet(body)}
		}
		if _, ok := node.([]any); !ok {
			return nil, &InvalidResponseError{Reason: path + " is not a list", Snippet: snippet(body)}
		}
	}

	var envelope struct {
		Data Snapshot `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &InvalidResponseError{Reason: "data node does not decode", Snippet: snippet(body)}
	}
	if len(envelope.Data.Projects) == 0 {
		return nil, ErrEmptyDataset
	}
	return &envelope.Data, nil
}

// CreateProject appends a new project row, optionally with its order lines.
// The absence of a rowIndex field is what tells the store to create rather
// than update, so the project must have a zero RowIndex.
func (c *Client) CreateProject(ctx context.Context, p Project, lines []ExtractedLine) error {
	if p.RowIndex != 0 {
		return fmt.Errorf("creating project %q: rowIndex %d already assigned", p.Name, p.RowIndex)
	}
	var w jsonObjectWriter
	w.EmbedFrom(p)
	if len(lines) > 0 {
		w.Append("details", lines)
	}
	_, err := c.do(ctx, "createProject", &w)
	return err
}

// UpdateProjectStatus moves the project at rowIndex to a new pipeline stage.
func (c *Client) UpdateProjectStatus(ctx context.Context, rowIndex int, status string) error {
	var w jsonObjectWriter
	w.Append("rowIndex", rowIndex)
	w.Append("newStatus", status)
	_, err := c.do(ctx, "updateProjectStatus", &w)
	return err
}

// DeleteProject removes the project at rowIndex along with the order lines
// attached to poNumber.
func (c *Client) DeleteProject(ctx context.Context, rowIndex int, poNumber string) error {
	var w jsonObjectWriter
	w.Append("rowIndex", rowIndex)
	w.Append("poNumber", poNumber)
	_, err := c.do(ctx, "deleteProject", &w)
	return err
}

// UpdateProject rewrites the full project row at p.RowIndex.
func (c *Client) UpdateProject(ctx context.Context, p Project) error {
	if p.RowIndex == 0 {
		return fmt.Errorf("updating project %q: missing rowIndex", p.Name)
	}
	var w jsonObjectWriter
	w.EmbedFrom(p)
	_, err := c.do(ctx, "updateProject", &w)
	return err
}

// UpdateForecasts replaces the month buckets of every given line of an
// order. Rows are matched remotely by poNumber and lineId.
func (c *Client) UpdateForecasts(ctx context.Context, poNumber string, details []OrderDetail) error {
	var w jsonObjectWriter
	w.Append("poNumber", poNumber)
	w.Append("details", details)
	_, err := c.do(ctx, "updateForecasts", &w)
	return err
}

// UpdateProjectAndDetails rewrites a project row and replaces its order
// lines in one exchange, the path taken after a purchase order extraction.
func (c *Client) UpdateProjectAndDetails(ctx context.Context, p Project, lines []ExtractedLine) error {
	if p.RowIndex == 0 {
		return fmt.Errorf("updating project %q: missing rowIndex", p.Name)
	}
	var w jsonObjectWriter
	w.Append("project", p)
	w.Append("details", lines)
	_, err := c.do(ctx, "updateProjectAndDetails", &w)
	return err
}

// CreateBudgetCategory appends a category envelope. allocated is in millions
// of MAD, as stored.
func (c *Client) CreateBudgetCategory(ctx context.Context, category string, allocated Quantity) error {
	var w jsonObjectWriter
	w.Append("budgetCategory", category)
	w.Append("allocatedBudget", allocated)
	_, err := c.do(ctx, "createBudgetCategory", &w)
	return err
}

// UpdateBudgetCategory rewrites the envelope at g.RowIndex.
func (c *Client) UpdateBudgetCategory(ctx context.Context, g GlobalBudget) error {
	if g.RowIndex == 0 {
		return fmt.Errorf("updating category %q: missing rowIndex", g.Category)
	}
	var w jsonObjectWriter
	w.EmbedFrom(g)
	_, err := c.do(ctx, "updateBudgetCategory", &w)
	return err
}

// DeleteBudgetCategory removes the envelope at rowIndex. Projects keep their
// category label; they show up as orphans on the next budget report.
func (c *Client) DeleteBudgetCategory(ctx context.Context, rowIndex int) error {
	var w jsonObjectWriter
	w.Append("rowIndex", rowIndex)
	_, err := c.do(ctx, "deleteBudgetCategory", &w)
	return err
}
