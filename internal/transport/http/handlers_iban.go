package httptransport

import (
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"fincode/pkg/iban"
	"fincode/pkg/platform/httputil"
	"fincode/pkg/registry"
	"fincode/pkg/requestcontext"
)

// batchConcurrency bounds the workers validating one batch request.
const batchConcurrency = 8

// handleParseIBAN handles POST /v1/iban/parse.
func (h *Handler) handleParseIBAN(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ParseIBANRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	opts := []iban.ParseOption{}
	if req.ValidateBBAN {
		opts = append(opts, iban.WithBBANValidation())
	}

	ib, err := iban.Parse(req.IBAN, opts...)
	if err != nil {
		h.metrics.IncrementValidation("iban_parse", "invalid")
		if req.AllowInvalid {
			httputil.WriteJSON(w, http.StatusOK, fromInvalidIBAN(registry.Normalize(req.IBAN), err))
			return
		}
		h.logger.InfoContext(ctx, "iban rejected",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	h.metrics.IncrementValidation("iban_parse", "valid")
	httputil.WriteJSON(w, http.StatusOK, fromIBAN(ctx, ib, h.directory))
}

// handleGenerateIBAN handles POST /v1/iban/generate.
func (h *Handler) handleGenerateIBAN(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[GenerateIBANRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	var opts []iban.GenerateOption
	if req.BranchCode != "" {
		opts = append(opts, iban.WithBranchCode(req.BranchCode))
	}

	ib, err := iban.Generate(req.CountryCode, req.BankCode, req.AccountCode, opts...)
	if err != nil {
		h.metrics.IncrementValidation("iban_generate", "invalid")
		h.logger.InfoContext(ctx, "iban generation rejected",
			"request_id", requestID,
			"country", req.CountryCode,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	h.metrics.IncrementValidation("iban_generate", "valid")
	h.logger.InfoContext(ctx, "iban generated",
		"request_id", requestID,
		"country", req.CountryCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, fromIBAN(ctx, ib, h.directory))
}

// handleBatchParseIBAN handles POST /v1/iban/batch. Items validate
// concurrently; results keep request order and one bad item never fails the
// batch.
func (h *Handler) handleBatchParseIBAN(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[BatchParseRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	opts := []iban.ParseOption{}
	if req.ValidateBBAN {
		opts = append(opts, iban.WithBBANValidation())
	}

	results := make([]IBANResponse, len(req.IBANs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, raw := range req.IBANs {
		g.Go(func() error {
			ib, err := iban.Parse(raw, opts...)
			if err != nil {
				h.metrics.IncrementValidation("iban_parse", "invalid")
				results[i] = fromInvalidIBAN(registry.Normalize(raw), err)
				return nil
			}
			h.metrics.IncrementValidation("iban_parse", "valid")
			results[i] = fromIBAN(gctx, ib, h.directory)
			return nil
		})
	}
	// Workers never return errors; Wait only joins them.
	_ = g.Wait()

	h.logger.InfoContext(ctx, "iban batch validated",
		"request_id", requestID,
		"count", len(req.IBANs),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, BatchParseResponse{Results: results})
}
