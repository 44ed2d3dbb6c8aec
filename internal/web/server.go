// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"clause-scan/internal/engine"
	"clause-scan/internal/version"
)

// WebServer represents the web server instance
type WebServer struct {
	port   string
	server *http.Server
}

// AnalyzeRequest is the POST body accepted by /api/analyze.
type AnalyzeRequest struct {
	Clause string `json:"clause"`
}

// maxRequestBody bounds the analyze request body size.
const maxRequestBody = 1 << 20 // 1MB

// NewWebServer creates a new web server instance
func NewWebServer(port string) *WebServer {
	return &WebServer{
		port: port,
	}
}

// Start starts the web server, falling back through a small port range when
// the requested port is busy.
func (ws *WebServer) Start() error {
	mux := ws.routes()

	var lastError error
	for i := 0; i < 10; i++ {
		currentPort := ws.port
		if i > 0 || ws.port == "8080" {
			currentPort = fmt.Sprintf("%d", 8080+i)
		}

		// Test if port is available first
		listener, err := net.Listen("tcp", ":"+currentPort)
		if err != nil {
			lastError = err
			if i == 0 {
				fmt.Printf("Port %s is not available, trying alternative ports...\n", currentPort)
			}
			continue
		}
		listener.Close()

		ws.server = ws.createSecureServer(currentPort, mux)

		fmt.Printf("Clause Scan web UI started on port %s\n", currentPort)
		fmt.Printf("Local: http://localhost:%s\n", currentPort)

		if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			lastError = err
			fmt.Printf("Server on port %s failed: %v\n", currentPort, err)
			continue
		}
		return nil
	}

	return fmt.Errorf("could not find an available port in range 8080-8089: %w", lastError)
}

// Stop stops the web server
func (ws *WebServer) Stop() error {
	if ws.server != nil {
		return ws.server.Close()
	}
	return nil
}

func (ws *WebServer) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", ws.serveHome)
	mux.HandleFunc("/api/analyze", ws.handleAnalyze)
	mux.HandleFunc("/api/health", ws.handleHealth)
	return mux
}

// createSecureServer builds an http.Server with conservative timeouts.
func (ws *WebServer) createSecureServer(port string, mux *http.ServeMux) *http.Server {
	return &http.Server{
		Addr:           ":" + port,
		Handler:        mux,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}
}

// setCORSHeaders applies the permissive CORS policy used by all API routes.
func setCORSHeaders(responseWriter http.ResponseWriter) {
	responseWriter.Header().Set("Access-Control-Allow-Origin", "*")
	responseWriter.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	responseWriter.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// handleAnalyze accepts {"clause": string} and returns the analysis report.
// Engine-level validation errors (empty clause) still return HTTP 200 with
// the error-report JSON; only transport problems produce non-200 statuses.
func (ws *WebServer) handleAnalyze(responseWriter http.ResponseWriter, request *http.Request) {
	setCORSHeaders(responseWriter)

	switch request.Method {
	case http.MethodOptions:
		responseWriter.WriteHeader(http.StatusOK)
		return
	case http.MethodPost:
		// fall through
	default:
		ws.sendError(responseWriter, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(request.Body, maxRequestBody))
	if err != nil {
		ws.sendError(responseWriter, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var analyzeRequest AnalyzeRequest
	if err := json.Unmarshal(body, &analyzeRequest); err != nil {
		ws.sendError(responseWriter, "Invalid JSON request body", http.StatusBadRequest)
		return
	}

	rep := engine.Analyze(analyzeRequest.Clause)

	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(http.StatusOK)
	json.NewEncoder(responseWriter).Encode(rep)
}

// handleHealth reports service status for load balancers and monitors.
func (ws *WebServer) handleHealth(responseWriter http.ResponseWriter, request *http.Request) {
	setCORSHeaders(responseWriter)

	switch request.Method {
	case http.MethodOptions:
		responseWriter.WriteHeader(http.StatusOK)
		return
	case http.MethodGet:
		// fall through
	default:
		ws.sendError(responseWriter, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	healthData := map[string]interface{}{
		"status":    "healthy",
		"service":   "clause-scan-web",
		"version":   version.Short(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"message":   "API is running successfully",
	}

	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(http.StatusOK)
	json.NewEncoder(responseWriter).Encode(healthData)
}

// serveHome renders the embedded analyzer page.
func (ws *WebServer) serveHome(responseWriter http.ResponseWriter, request *http.Request) {
	if request.URL.Path != "/" {
		http.NotFound(responseWriter, request)
		return
	}
	if request.Method != http.MethodGet {
		ws.sendError(responseWriter, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	responseWriter.Header().Set("Content-Type", "text/html; charset=utf-8")
	responseWriter.Header().Set("Access-Control-Allow-Origin", "*")
	responseWriter.WriteHeader(http.StatusOK)
	fmt.Fprint(responseWriter, homePage)
}

// sendError writes a JSON error response with the given status code.
func (ws *WebServer) sendError(responseWriter http.ResponseWriter, message string, statusCode int) {
	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(statusCode)
	json.NewEncoder(responseWriter).Encode(map[string]string{"error": message})
}
