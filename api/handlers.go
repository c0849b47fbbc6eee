package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"wrapquote/core/estimate"
	"wrapquote/core/output"
	"wrapquote/core/pricing"
	"wrapquote/core/reference"
	"wrapquote/internal/errors"
	"wrapquote/internal/logging"
)

const maxBodyBytes = 1 << 20

// decode reads a single JSON object into v. Unknown fields are rejected.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if err == io.EOF {
			return errors.Input("request body is empty")
		}
		return errors.Wrap(errors.TypeInput, "invalid JSON body", err)
	}
	if dec.More() {
		return errors.Input("request body must contain a single JSON object")
	}
	return nil
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, HealthResponse{
		Status:  "healthy",
		Version: s.version,
		Time:    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, VersionResponse{
		Version:    s.version,
		Engine:     "wrapquote",
		APIVersion: "v1",
	}, http.StatusOK)
}

// handleQuote handles POST /v1/quotes.
// Fields missing from the body keep the shop defaults.
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	explain, err := queryBool(r, "explain")
	if err != nil {
		writeFailure(w, err)
		return
	}

	job := s.defaults.Clone()
	if err := decode(w, r, &job); err != nil {
		writeFailure(w, err)
		return
	}

	q, err := s.calc.Calculate(job)
	if err != nil {
		writeFailure(w, err)
		return
	}

	log := logging.ForQuote(q.ID, string(q.Job.Vehicle), string(q.Job.Wrap)).
		With(zap.String("request_id", RequestIDFrom(r.Context())))
	log.Info("quote calculated",
		logging.Money("retail", q.Pricing.Retail),
		zap.Int("warnings", len(q.Warnings)),
	)
	for _, warning := range q.Warnings {
		log.Warn(warning.Message, zap.String("code", string(warning.Code)))
	}

	writeJSON(w, output.NewQuoteDocument(q, explain), http.StatusOK)
}

// handleMaterial handles POST /v1/material
func (s *Server) handleMaterial(w http.ResponseWriter, r *http.Request) {
	var in estimate.MaterialInput
	if err := decode(w, r, &in); err != nil {
		writeFailure(w, err)
		return
	}
	result, err := s.estimator.Material(in)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, result, http.StatusOK)
}

// handleLabor handles POST /v1/labor
func (s *Server) handleLabor(w http.ResponseWriter, r *http.Request) {
	var in estimate.LaborInput
	if err := decode(w, r, &in); err != nil {
		writeFailure(w, err)
		return
	}
	result, err := s.estimator.Labor(in)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, result, http.StatusOK)
}

// handlePricing handles POST /v1/pricing
func (s *Server) handlePricing(w http.ResponseWriter, r *http.Request) {
	var in pricing.Input
	if err := decode(w, r, &in); err != nil {
		writeFailure(w, err)
		return
	}
	result, err := pricing.Compute(in)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, PricingResponse{
		Result:           result,
		EffectivePercent: pricing.EffectivePercent(in.Mode, in.Percent),
		Clamped:          pricing.Clamped(in.Mode, in.Percent),
	}, http.StatusOK)
}

// handleReference handles GET /v1/reference
func (s *Server) handleReference(w http.ResponseWriter, r *http.Request) {
	resp, err := s.reference()
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, resp, http.StatusOK)
}

func (s *Server) reference() (*ReferenceResponse, error) {
	resp := &ReferenceResponse{
		Vehicles:   s.table.Vehicles(),
		WrapTypes:  reference.WrapTypes(),
		RollWidths: reference.RollWidths(),
		Scopes:     pricing.JobScopes(),
		Categories: pricing.MaterialCategories(),
	}
	for _, m := range []pricing.Mode{pricing.ModeMargin, pricing.ModeMarkup} {
		resp.Modes = append(resp.Modes, ModeLimit{Mode: m, Cap: m.Cap()})
	}

	for _, v := range resp.Vehicles {
		area := MatrixRow{Vehicle: v, Values: map[reference.WrapType]decimal.Decimal{}}
		hours := MatrixRow{Vehicle: v, Values: map[reference.WrapType]decimal.Decimal{}}
		for _, wt := range resp.WrapTypes {
			a, err := s.table.BaseArea(v, wt)
			if err != nil {
				return nil, err
			}
			h, err := s.table.BaseHours(v, wt)
			if err != nil {
				return nil, err
			}
			area.Values[wt] = a
			hours.Values[wt] = h
		}
		resp.BaseArea = append(resp.BaseArea, area)
		resp.BaseHours = append(resp.BaseHours, hours)
	}

	for _, wt := range resp.WrapTypes {
		resp.Floors = append(resp.Floors, Floor{
			Wrap:          wt,
			MinLinearFeet: s.table.MinLinearFeet(wt),
			MinLaborHours: s.table.MinLaborHours(wt),
		})
	}
	for _, f := range reference.ComplexityFactors() {
		resp.ComplexityFactors = append(resp.ComplexityFactors, ComplexityFactor{Factor: f, Delta: reference.DeltaFor(f)})
	}
	for _, b := range reference.VinylBrands() {
		cost, err := reference.VinylCost(b)
		if err != nil {
			return nil, err
		}
		resp.VinylBrands = append(resp.VinylBrands, VinylBrand{Brand: b, CostPerLinearFoot: cost})
	}
	for _, b := range reference.PrintBrands() {
		pl, err := reference.PrintLaminateCost(b)
		if err != nil {
			return nil, err
		}
		resp.PrintBrands = append(resp.PrintBrands, PrintBrand{Brand: b, PrintLamCost: pl})
	}
	return resp, nil
}

func queryBool(r *http.Request, name string) (bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.Newf(errors.TypeInput, "query parameter %s must be a boolean", name)
	}
	return b, nil
}
