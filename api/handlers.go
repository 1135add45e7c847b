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

package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/civitas-lang/civitas/runtime"
)

type createPartyRequest struct {
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}

// handleCreateParty handles POST /parties.
func (s *Server) handleCreateParty(w http.ResponseWriter, r *http.Request) {
	var req createPartyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeProblem(w, r, http.StatusBadRequest, "malformed request body", err.Error())
		return
	}

	if err := s.engine.CreateParty(req.Name, req.Roles); err != nil {
		slog.ErrorContext(r.Context(), "create party failed", "name", req.Name, "error", err)
		s.writeProblem(w, r, http.StatusConflict, "could not create party", err.Error())
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{"name": req.Name})
}

type createArtifactRequest struct {
	Type       string         `json:"type"`
	ID         string         `json:"id"`
	Properties map[string]any `json:"properties"`
}

// handleCreateArtifact handles POST /artifacts.
func (s *Server) handleCreateArtifact(w http.ResponseWriter, r *http.Request) {
	var req createArtifactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeProblem(w, r, http.StatusBadRequest, "malformed request body", err.Error())
		return
	}

	instance, err := s.engine.CreateArtifactInstance(req.Type, req.ID, runtime.ArgsFromMap(req.Properties))
	if err != nil {
		slog.ErrorContext(r.Context(), "create artifact failed", "type", req.Type, "id", req.ID, "error", err)
		s.writeProblem(w, r, http.StatusConflict, "could not create artifact instance", err.Error())
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{"id": instance.InstanceID, "type": req.Type})
}

type performActionRequest struct {
	Party  string         `json:"party"`
	Action string         `json:"action"`
	Kwargs map[string]any `json:"kwargs"`
}

type performActionResponse struct {
	Verdict string `json:"verdict"`
	Reason  string `json:"reason,omitempty"`
}

// handlePerformAction handles POST /actions.
func (s *Server) handlePerformAction(w http.ResponseWriter, r *http.Request) {
	var req performActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeProblem(w, r, http.StatusBadRequest, "malformed request body", err.Error())
		return
	}

	decision, err := s.engine.PerformAction(r.Context(), req.Party, req.Action, runtime.ArgsFromMap(req.Kwargs))
	if err != nil {
		slog.ErrorContext(r.Context(), "perform action failed", "party", req.Party, "action", req.Action, "error", err)
		s.writeProblem(w, r, http.StatusBadRequest, "could not perform action", err.Error())
		return
	}

	history := s.engine.Tracer().History
	var traceNode any
	if len(history) > 0 {
		traceNode = history[len(history)-1]
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"decision": performActionResponse{Verdict: decision.Verdict.String(), Reason: decision.Reason},
		"trace":    traceNode,
	})
}
