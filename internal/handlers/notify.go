package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mounta11n/teable-mcp-server/internal/ntfy"
	"github.com/mounta11n/teable-mcp-server/internal/remote"
	"github.com/mounta11n/teable-mcp-server/internal/response"
)

// NotifyHandler serves the send_notification tool against an ntfy server.
type NotifyHandler struct {
	client *ntfy.Client
}

// NewNotifyHandler creates a handler backed by the given ntfy client.
func NewNotifyHandler(client *ntfy.Client) *NotifyHandler {
	return &NotifyHandler{client: client}
}

type SendNotificationParams struct {
	Channel  string   `json:"channel"`
	Message  string   `json:"message"`
	Title    string   `json:"title,omitempty"`
	Priority int      `json:"priority,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// Tool returns the send_notification tool definition.
func (h *NotifyHandler) Tool() mcp.Tool {
	return mcp.NewTool("send_notification",
		mcp.WithDescription("Send a push notification through ntfy. The message is published to the given channel (topic) and delivered to all its subscribers."),
		mcp.WithString("channel",
			mcp.Required(),
			mcp.Description("ntfy topic to publish to"),
		),
		mcp.WithString("message",
			mcp.Required(),
			mcp.Description("Notification message body"),
		),
		mcp.WithString("title",
			mcp.Description("Notification title shown above the message"),
		),
		mcp.WithNumber("priority",
			mcp.Min(1),
			mcp.Max(5),
			mcp.Description("Message priority from 1 (min) to 5 (max/urgent)"),
		),
		mcp.WithArray("tags",
			mcp.Description("Tags or emoji shortcodes attached to the notification"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
}

// Handle executes one send_notification invocation.
func (h *NotifyHandler) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params SendNotificationParams
	if err := request.BindArguments(&params); err != nil {
		return nil, fmt.Errorf("failed to parse arguments: %w", err)
	}

	if params.Channel == "" {
		return nil, fmt.Errorf("channel is required")
	}

	if params.Message == "" {
		return nil, fmt.Errorf("message is required")
	}

	if params.Priority != 0 && (params.Priority < 1 || params.Priority > 5) {
		return nil, fmt.Errorf("priority must be between 1 and 5")
	}

	body, err := h.client.Publish(ctx, ntfy.Message{
		Channel:  params.Channel,
		Text:     params.Message,
		Title:    params.Title,
		Priority: params.Priority,
		Tags:     params.Tags,
	})
	if err != nil {
		var apiErr *remote.APIError
		if errors.As(err, &apiErr) {
			return response.RemoteError("ntfy", apiErr)
		}
		return response.Errorf("request to ntfy failed: %v", err)
	}

	return response.PrettyJSON(fmt.Sprintf("Notification sent to channel %q:", params.Channel), body)
}
