package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mounta11n/teable-mcp-server/internal/remote"
	"github.com/mounta11n/teable-mcp-server/internal/response"
	"github.com/mounta11n/teable-mcp-server/internal/teable"
)

// RecordsHandler serves the query_records tool against a Teable API.
type RecordsHandler struct {
	client         *teable.Client
	defaultTableID string
}

// NewRecordsHandler creates a handler backed by the given Teable client.
// When defaultTableID is non-empty, the tool's tableId argument becomes
// optional and falls back to it.
func NewRecordsHandler(client *teable.Client, defaultTableID string) *RecordsHandler {
	return &RecordsHandler{
		client:         client,
		defaultTableID: defaultTableID,
	}
}

type QueryRecordsParams struct {
	TableID string `json:"tableId,omitempty"`
	Filter  string `json:"filter,omitempty"`
	Sort    string `json:"sort,omitempty"`
	Limit   int    `json:"limit,omitempty"`
}

// Tool returns the query_records tool definition. The tableId property is
// only marked required when no default table is configured.
func (h *RecordsHandler) Tool() mcp.Tool {
	tableIDOpts := []mcp.PropertyOption{
		mcp.Description("Teable table identifier to query (e.g., \"tblxxxxxxxxxxxxxxx\")"),
	}
	if h.defaultTableID == "" {
		tableIDOpts = append(tableIDOpts, mcp.Required())
	}

	return mcp.NewTool("query_records",
		mcp.WithDescription("Query records from a Teable table with optional filtering, sorting, and a result limit. Returns the raw record data as JSON."),
		mcp.WithString("tableId", tableIDOpts...),
		mcp.WithString("filter",
			mcp.Description("Filter expression passed through to the Teable API"),
		),
		mcp.WithString("sort",
			mcp.Description("Sort specification passed through to the Teable API"),
		),
		mcp.WithNumber("limit",
			mcp.Min(1),
			mcp.Description("Maximum number of records to return (defaults to the API's own limit)"),
		),
	)
}

// Handle executes one query_records invocation.
func (h *RecordsHandler) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params QueryRecordsParams
	if err := request.BindArguments(&params); err != nil {
		return nil, fmt.Errorf("failed to parse arguments: %w", err)
	}

	tableID := params.TableID
	if tableID == "" {
		tableID = h.defaultTableID
	}
	if tableID == "" {
		return nil, fmt.Errorf("tableId is required")
	}

	if params.Limit < 0 {
		return nil, fmt.Errorf("limit must be a positive number")
	}

	body, err := h.client.ListRecords(ctx, tableID, teable.ListRecordsOptions{
		Filter: params.Filter,
		Sort:   params.Sort,
		Limit:  params.Limit,
	})
	if err != nil {
		var apiErr *remote.APIError
		if errors.As(err, &apiErr) {
			return response.RemoteError("Teable API", apiErr)
		}
		return response.Errorf("request to Teable failed: %v", err)
	}

	return response.PrettyJSON(fmt.Sprintf("Records from table %q:", tableID), body)
}
