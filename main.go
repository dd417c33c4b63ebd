package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/mark3labs/mcp-go/server"

	"github.com/mounta11n/teable-mcp-server/internal/config"
	"github.com/mounta11n/teable-mcp-server/internal/handlers"
	"github.com/mounta11n/teable-mcp-server/internal/mode"
	"github.com/mounta11n/teable-mcp-server/internal/ntfy"
	"github.com/mounta11n/teable-mcp-server/internal/teable"
)

var (
	configFile = flag.String("config", "", "Path to YAML config file (optional; environment variables override it)")
	serverMode = flag.String("server", "", "Server variant to run: teable or ntfy (defaults to MCP_SERVER_MODE, then teable)")
	transport  = flag.String("transport", "stdio", "Transport type: stdio or sse")
	port       = flag.Int("port", 8080, "Port for SSE server (only used with -transport=sse)")
	version    = "dev"
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	m, err := mode.Parse(*serverMode)
	if err != nil {
		log.Fatalf("Failed to select server mode: %v", err)
	}

	var name, instructions string
	var tool handlers.SingleTool

	switch m {
	case mode.Teable:
		if cfg.Teable.Token == "" {
			log.Println("Warning: no Teable API token configured (set TEABLE_API_TOKEN); requests to non-public tables will be rejected")
		}
		name = "teable-mcp-server"
		instructions = "This MCP server queries records from a Teable table. Use the query_records tool with optional filter, sort, and limit arguments; results are returned as raw JSON from the Teable API."
		tool = handlers.NewRecordsHandler(teable.New(cfg.Teable.APIURL, cfg.Teable.Token, nil), cfg.Teable.TableID)
	case mode.Ntfy:
		name = "ntfy-mcp-server"
		instructions = "This MCP server sends push notifications through ntfy. Use the send_notification tool with a channel and message, plus optional title, priority (1-5), and tags."
		tool = handlers.NewNotifyHandler(ntfy.New(cfg.Ntfy.BaseURL, cfg.Ntfy.Token, nil))
	}

	s := server.NewMCPServer(
		name,
		version,
		server.WithInstructions(instructions),
	)

	s.AddTool(tool.Tool(), tool.Handle)

	switch *transport {
	case "stdio":
		if err := server.ServeStdio(s); err != nil {
			fmt.Printf("Server error: %v\n", err)
		}
	case "sse":
		sseServer := server.NewSSEServer(s)

		addr := ":" + strconv.Itoa(*port)
		log.Printf("Starting SSE MCP server on %s", addr)
		log.Printf("SSE endpoint: http://localhost%s/sse", addr)
		log.Printf("Message endpoint: http://localhost%s/message", addr)

		if err := http.ListenAndServe(addr, sseServer); err != nil {
			fmt.Printf("SSE server error: %v\n", err)
		}
	default:
		log.Fatalf("Unknown transport type: %s. Supported: stdio, sse", *transport)
	}
}
