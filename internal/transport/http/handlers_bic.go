package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fincode/pkg/bic"
	dErrors "fincode/pkg/domain-errors"
	"fincode/pkg/platform/httputil"
	"fincode/pkg/registry"
	"fincode/pkg/requestcontext"
)

// handleParseBIC handles POST /v1/bic/parse.
func (h *Handler) handleParseBIC(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ParseBICRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	var opts []bic.ParseOption
	if req.EnforceSwift {
		opts = append(opts, bic.EnforceSwiftCompliance())
	}

	b, err := bic.Parse(req.BIC, opts...)
	if err != nil {
		h.metrics.IncrementValidation("bic_parse", "invalid")
		h.logger.InfoContext(ctx, "bic rejected",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	h.metrics.IncrementValidation("bic_parse", "valid")
	httputil.WriteJSON(w, http.StatusOK, fromBIC(b))
}

// handleBICByBankCode handles GET /v1/bic/{countryCode}/{bankCode}: the
// resolved BIC plus every candidate in registry order.
func (h *Handler) handleBICByBankCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	countryCode := chi.URLParam(r, "countryCode")
	bankCode := chi.URLParam(r, "bankCode")

	if h.directory == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "no bank directory configured"))
		return
	}

	candidates, err := bic.CandidatesFromBankCode(ctx, h.directory, countryCode, bankCode)
	if err != nil {
		h.metrics.IncrementBICResolution("error")
		h.logger.ErrorContext(ctx, "bank directory lookup failed",
			"request_id", requestID,
			"country", countryCode,
			"bank_code", bankCode,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	if len(candidates) == 0 {
		h.metrics.IncrementBICResolution("not_found")
		httputil.WriteError(w, dErrors.Newf(dErrors.CodeNotFound,
			"no BIC registered for bank code %s/%s", countryCode, bankCode))
		return
	}

	resolved, err := bic.FromBankCode(ctx, h.directory, countryCode, bankCode)
	if err != nil {
		h.metrics.IncrementBICResolution("error")
		httputil.WriteError(w, err)
		return
	}
	h.metrics.IncrementBICResolution("ok")

	resp := BICCandidatesResponse{
		CountryCode: resolved.CountryCode(),
		BankCode:    registry.Normalize(bankCode),
		BIC:         resolved.String(),
		Candidates:  make([]BICResponse, 0, len(candidates)),
	}
	for _, c := range candidates {
		resp.Candidates = append(resp.Candidates, fromBIC(c))
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}
