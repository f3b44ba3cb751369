package server

import (
	"bytes"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/rshade/equipment-cost/internal/asset"
	"github.com/rshade/equipment-cost/internal/costerr"
	"github.com/rshade/equipment-cost/internal/depreciation"
	"github.com/rshade/equipment-cost/internal/estimate"
	"github.com/rshade/equipment-cost/internal/pricing"
	"github.com/rshade/equipment-cost/internal/report"
	"github.com/rshade/equipment-cost/internal/utilization"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// errorResponse is the body of every non-2xx API response.
type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

type handler struct {
	estimator *estimate.Estimator
	fuels     pricing.FuelPricer
	metrics   *Metrics
}

// estimate handles POST /api/v1/estimate. Query parameters method,
// utilization and salvage override the body.
func (h *handler) estimate(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	rep, err := h.estimator.Estimate(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.metrics.estimates.Inc()
	writeJSON(w, r, http.StatusOK, rep)
}

// schedule handles POST /api/v1/schedule.
func (h *handler) schedule(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	dep, err := depreciation.New(req.Params)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	method := req.Method
	if method == "" {
		method = depreciation.StraightLine
	}
	s, err := dep.Schedule(method)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, s)
}

// classes handles GET /api/v1/classes.
func (h *handler) classes(w http.ResponseWriter, r *http.Request) {
	table, err := report.NewClassTable()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, table)
}

// fuelTable handles GET /api/v1/fuels.
func (h *handler) fuelTable(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, report.NewFuelTable(h.fuels))
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeRequest reads Params from the body on top of the defaults. An empty
// body means the defaults.
func (h *handler) decodeRequest(r *http.Request) (estimate.Request, error) {
	p := asset.DefaultParams()
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return estimate.Request{}, costerr.Invalid("body", "failed to read body: %v", err)
	}
	set := map[string]json.RawMessage{}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &p); err != nil {
			return estimate.Request{}, costerr.Invalid("body", "malformed JSON: %v", err)
		}
		if err := json.Unmarshal(body, &set); err != nil {
			return estimate.Request{}, costerr.Invalid("body", "malformed JSON: %v", err)
		}
	}
	p, err = pricing.Resolve(h.fuels, p, func(key string) bool {
		_, ok := set[key]
		return ok
	})
	if err != nil {
		return estimate.Request{}, err
	}

	q := r.URL.Query()
	method, err := depreciation.ParseMethod(q.Get("method"))
	if err != nil {
		return estimate.Request{}, err
	}
	if raw := q.Get("salvage"); raw != "" {
		s, err := depreciation.ParseSalvage(raw)
		if err != nil {
			return estimate.Request{}, err
		}
		p = p.WithSalvageValue(s)
	}

	req := estimate.Request{Params: p, Method: method}
	if raw := q.Get("utilization"); raw != "" {
		sel, err := utilization.ParseSelector(raw)
		if err != nil {
			return estimate.Request{}, err
		}
		req.Utilization = &sel
	}
	return req, nil
}

// statusFor maps an engine error to an HTTP status.
func statusFor(err error) int {
	switch costerr.KindOf(err) {
	case costerr.InvalidInput:
		return http.StatusBadRequest
	case costerr.ArithmeticDomain:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (h *handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	h.metrics.observeError(err)

	event := zerolog.Ctx(r.Context()).Warn()
	if status >= http.StatusInternalServerError {
		event = zerolog.Ctx(r.Context()).Error()
	}
	event.Err(err).
		Int("status", status).
		Str(estimate.FieldErrorKind, costerr.KindOf(err).String()).
		Msg("request failed")

	writeJSON(w, r, status, errorResponse{Error: err.Error(), Kind: costerr.KindOf(err).String()})
}

// writeJSON encodes v before writing the header, so an unencodable value
// becomes a 500 instead of a truncated success.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
		status = http.StatusInternalServerError
		body, _ = json.Marshal(errorResponse{Error: "failed to encode response", Kind: costerr.Kind(0).String()})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to write response")
	}
}
