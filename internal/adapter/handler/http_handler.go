package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rl1809/roomledger/internal/adapter/auth"
	"github.com/rl1809/roomledger/internal/core/service"
	"github.com/rl1809/roomledger/internal/port"
)

type HTTPHandler struct {
	registry *service.RegistryService
	pools    *service.PoolService
}

func NewHTTPHandler(registry *service.RegistryService, pools *service.PoolService) *HTTPHandler {
	return &HTTPHandler{registry: registry, pools: pools}
}

type RegisterPropertyHTTPRequest struct {
	Authority  string `json:"authority"`
	UnitCount  uint64 `json:"unit_count"`
	FeeRateBps uint32 `json:"fee_rate_bps"`
}

type RegisterPropertyHTTPResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	PropertyID   string `json:"property_id,omitempty"`
	ClaimAssetID string `json:"claim_asset_id,omitempty"`
}

type IssueUnitHTTPRequest struct {
	PropertyID string `json:"property_id"`
	UnitIndex  uint64 `json:"unit_index"`
	Recipient  string `json:"recipient"`
}

type RecordBookingHTTPRequest struct {
	PropertyID string `json:"property_id"`
	UnitIndex  uint64 `json:"unit_index"`
	Payer      string `json:"payer"`
	Credential string `json:"credential"`
	Amount     uint64 `json:"amount"`
}

type DistributeRevenueHTTPRequest struct {
	PropertyID string `json:"property_id"`
	Claimant   string `json:"claimant"`
}

type DistributeRevenueHTTPResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	PaidAmount uint64 `json:"paid_amount"`
}

type CreatePoolHTTPRequest struct {
	Authority   string `json:"authority"`
	BaseAssetID string `json:"base_asset_id"`
	FeeRateBps  uint32 `json:"fee_rate_bps"`
}

type CreatePoolHTTPResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	PoolID       string `json:"pool_id,omitempty"`
	ShareAssetID string `json:"share_asset_id,omitempty"`
}

type ProvideLiquidityHTTPRequest struct {
	PoolID     string `json:"pool_id"`
	Depositor  string `json:"depositor"`
	Credential string `json:"credential"`
	Amount     uint64 `json:"amount"`
}

type ProvideLiquidityHTTPResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	SharesMinted uint64 `json:"shares_minted"`
}

type WithdrawLiquidityHTTPRequest struct {
	PoolID     string `json:"pool_id"`
	Holder     string `json:"holder"`
	Credential string `json:"credential"`
	Shares     uint64 `json:"shares"`
}

type WithdrawLiquidityHTTPResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	BaseReturned uint64 `json:"base_returned"`
}

type GenericHTTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// statusFor maps service and ledger errors to an HTTP status and a stable
// client-facing message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrInvalidConfiguration),
		errors.Is(err, service.ErrInvalidUnitIndex):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrPropertyNotFound),
		errors.Is(err, service.ErrPoolNotFound),
		errors.Is(err, port.ErrAssetNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, service.ErrAllUnitsIssued),
		errors.Is(err, service.ErrNoProfitToDistribute),
		errors.Is(err, service.ErrNoClaimTokensOutstanding),
		errors.Is(err, service.ErrInsufficientLiquidity),
		errors.Is(err, port.ErrInsufficientFunds):
		return http.StatusConflict, err.Error()
	case errors.Is(err, port.ErrUnauthorized),
		errors.Is(err, auth.ErrInvalidCredential):
		return http.StatusForbidden, err.Error()
	}
	return http.StatusInternalServerError, "internal error"
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, GenericHTTPResponse{
			Success: false,
			Message: "invalid request body",
		})
		return false
	}
	return true
}

func writeFailure(w http.ResponseWriter, err error) {
	status, message := statusFor(err)
	writeJSON(w, status, GenericHTTPResponse{Success: false, Message: message})
}

func (h *HTTPHandler) RegisterProperty(w http.ResponseWriter, r *http.Request) {
	var req RegisterPropertyHTTPRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	prop, err := h.registry.RegisterProperty(r.Context(), req.Authority, req.UnitCount, req.FeeRateBps)
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, RegisterPropertyHTTPResponse{
		Success:      true,
		Message:      "property registered",
		PropertyID:   prop.ID,
		ClaimAssetID: prop.ClaimAssetID,
	})
}

func (h *HTTPHandler) IssueUnit(w http.ResponseWriter, r *http.Request) {
	var req IssueUnitHTTPRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.registry.IssueUnit(r.Context(), req.PropertyID, req.UnitIndex, req.Recipient); err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, GenericHTTPResponse{Success: true, Message: "unit issued"})
}

func (h *HTTPHandler) RecordBooking(w http.ResponseWriter, r *http.Request) {
	var req RecordBookingHTTPRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.registry.RecordBooking(r.Context(), req.PropertyID, req.UnitIndex, req.Payer, req.Credential, req.Amount); err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, GenericHTTPResponse{Success: true, Message: "booking recorded"})
}

func (h *HTTPHandler) DistributeRevenue(w http.ResponseWriter, r *http.Request) {
	var req DistributeRevenueHTTPRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	paid, err := h.registry.DistributeRevenue(r.Context(), req.PropertyID, req.Claimant)
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, DistributeRevenueHTTPResponse{
		Success:    true,
		Message:    "revenue distributed",
		PaidAmount: paid,
	})
}

func (h *HTTPHandler) CreatePool(w http.ResponseWriter, r *http.Request) {
	var req CreatePoolHTTPRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	pool, err := h.pools.CreatePool(r.Context(), req.Authority, req.BaseAssetID, req.FeeRateBps)
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, CreatePoolHTTPResponse{
		Success:      true,
		Message:      "pool created",
		PoolID:       pool.ID,
		ShareAssetID: pool.ShareAssetID,
	})
}

func (h *HTTPHandler) ProvideLiquidity(w http.ResponseWriter, r *http.Request) {
	var req ProvideLiquidityHTTPRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	shares, err := h.pools.ProvideLiquidity(r.Context(), req.PoolID, req.Depositor, req.Credential, req.Amount)
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ProvideLiquidityHTTPResponse{
		Success:      true,
		Message:      "liquidity provided",
		SharesMinted: shares,
	})
}

func (h *HTTPHandler) WithdrawLiquidity(w http.ResponseWriter, r *http.Request) {
	var req WithdrawLiquidityHTTPRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	base, err := h.pools.WithdrawLiquidity(r.Context(), req.PoolID, req.Holder, req.Credential, req.Shares)
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, WithdrawLiquidityHTTPResponse{
		Success:      true,
		Message:      "liquidity withdrawn",
		BaseReturned: base,
	})
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
