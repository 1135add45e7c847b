// Copyright 2025 Binaek Sarkar
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package api is the HTTP surface over an *runtime.Engine: ambient
// transport, not a new core contract. Every handler only ever calls one
// of the three driver operations.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/binaek/gocoll/collection"
	"github.com/civitas-lang/civitas/runtime"
	"golang.org/x/exp/slices"
)

// ListenerServerPair pairs a bound listener with the server serving it, so
// Setup can open several addresses and StopServer can close them all.
type ListenerServerPair struct {
	Listener net.Listener
	Server   *http.Server
}

func (p *ListenerServerPair) Close() error {
	if err := p.Listener.Close(); err != nil {
		return err
	}
	return p.Server.Close()
}

// Server exposes an Engine's driver operations over HTTP.
type Server struct {
	engine    *runtime.Engine
	listeners []*ListenerServerPair
}

func NewServer(engine *runtime.Engine) *Server {
	return &Server{engine: engine}
}

// ProblemDetails is an RFC 9457 error body.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title"`
	Status   int    `json:"status,omitempty"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

func resolveBindings(port int, listen []string) ([]string, error) {
	predefined := [...]string{"local", "local4", "local6", "network", "network4", "network6"}

	for _, addr := range listen {
		if slices.Contains(predefined[:], addr) && len(listen) != 1 {
			return nil, fmt.Errorf("when using predefined listen addresses, there must be exactly one address")
		}
	}

	if len(listen) == 1 && slices.Contains(predefined[:], listen[0]) {
		switch listen[0] {
		case "local":
			return []string{net.JoinHostPort("localhost", fmt.Sprintf("%d", port))}, nil
		case "local4":
			return []string{net.JoinHostPort("127.0.0.1", fmt.Sprintf("%d", port))}, nil
		case "local6":
			return []string{net.JoinHostPort("[::1]", fmt.Sprintf("%d", port))}, nil
		case "network":
			return []string{net.JoinHostPort("", fmt.Sprintf("%d", port))}, nil
		case "network4":
			return []string{net.JoinHostPort("0.0.0.0", fmt.Sprintf("%d", port))}, nil
		case "network6":
			return []string{net.JoinHostPort("[::]", fmt.Sprintf("%d", port))}, nil
		}
	}

	return collection.Map(
		collection.From(listen...),
		func(addr string) string { return net.JoinHostPort(addr, fmt.Sprintf("%d", port)) },
	).Elements(), nil
}

// Setup binds the mux to every resolved address but does not yet accept
// connections; call StartServer to begin serving.
func (s *Server) Setup(ctx context.Context, port int, listen []string) error {
	mux := http.NewServeMux()
	mux.Handle("POST /parties", http.HandlerFunc(s.handleCreateParty))
	mux.Handle("POST /artifacts", http.HandlerFunc(s.handleCreateArtifact))
	mux.Handle("POST /actions", http.HandlerFunc(s.handlePerformAction))
	mux.Handle("GET /health", http.HandlerFunc(s.handleHealth))

	bindings, err := resolveBindings(port, listen)
	if err != nil {
		return err
	}

	s.listeners = make([]*ListenerServerPair, 0, len(bindings))
	for _, binding := range bindings {
		ln, err := net.Listen("tcp", binding)
		if err != nil {
			for _, l := range s.listeners {
				_ = l.Close()
			}
			s.listeners = nil
			return fmt.Errorf("failed to listen on %s: %w", binding, err)
		}
		s.listeners = append(s.listeners, &ListenerServerPair{
			Listener: ln,
			Server: &http.Server{
				Handler:      mux,
				ReadTimeout:  30 * time.Second,
				WriteTimeout: 30 * time.Second,
				BaseContext:  func(net.Listener) context.Context { return ctx },
			},
		})
		slog.DebugContext(ctx, "civitas api listening", "binding", binding)
	}
	return nil
}

// StartServer serves every listener opened by Setup until each one is
// closed. Errors other than a clean shutdown are logged, not returned,
// since each listener runs on its own and StopServer is the cancellation
// path.
func (s *Server) StartServer(ctx context.Context) {
	for _, ln := range s.listeners {
		ln := ln
		go func() {
			if err := ln.Server.Serve(ln.Listener); err != nil && err != http.ErrServerClosed {
				slog.ErrorContext(ctx, "civitas api listener stopped", "error", err)
			}
		}()
	}
}

// StopServer closes every listener opened by Setup.
func (s *Server) StopServer(context.Context) error {
	for _, ln := range s.listeners {
		_ = ln.Close()
	}
	s.listeners = nil
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) writeProblem(w http.ResponseWriter, r *http.Request, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ProblemDetails{
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: r.URL.Path,
	})
}
