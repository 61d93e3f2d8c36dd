package handler

import (
	"context"
	"errors"

	"github.com/rl1809/roomledger/internal/adapter/auth"
	"github.com/rl1809/roomledger/internal/adapter/handler/pb"
	"github.com/rl1809/roomledger/internal/core/service"
	"github.com/rl1809/roomledger/internal/port"
)

type GRPCHandler struct {
	pb.UnimplementedRoomLedgerServer
	registry *service.RegistryService
	pools    *service.PoolService
}

func NewGRPCHandler(registry *service.RegistryService, pools *service.PoolService) *GRPCHandler {
	return &GRPCHandler{registry: registry, pools: pools}
}

// failureMessage maps known errors to a stable client-facing message.
func failureMessage(err error) string {
	for _, known := range []error{
		service.ErrInvalidConfiguration,
		service.ErrPropertyNotFound,
		service.ErrPoolNotFound,
		service.ErrInvalidUnitIndex,
		service.ErrAllUnitsIssued,
		service.ErrNoProfitToDistribute,
		service.ErrNoClaimTokensOutstanding,
		service.ErrInsufficientLiquidity,
		service.ErrLedgerInconsistent,
		port.ErrAssetNotFound,
		port.ErrUnauthorized,
		port.ErrInsufficientFunds,
		auth.ErrInvalidCredential,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return "internal error"
}

func (h *GRPCHandler) RegisterProperty(ctx context.Context, req *pb.RegisterPropertyRequest) (*pb.RegisterPropertyResponse, error) {
	prop, err := h.registry.RegisterProperty(ctx, req.GetAuthority(), req.GetUnitCount(), req.GetFeeRateBps())
	if err != nil {
		return &pb.RegisterPropertyResponse{Success: false, Message: failureMessage(err)}, nil
	}
	return &pb.RegisterPropertyResponse{
		Success:      true,
		Message:      "property registered",
		PropertyId:   prop.ID,
		ClaimAssetId: prop.ClaimAssetID,
	}, nil
}

func (h *GRPCHandler) IssueUnit(ctx context.Context, req *pb.IssueUnitRequest) (*pb.IssueUnitResponse, error) {
	err := h.registry.IssueUnit(ctx, req.GetPropertyId(), req.GetUnitIndex(), req.GetRecipient())
	if err != nil {
		return &pb.IssueUnitResponse{Success: false, Message: failureMessage(err)}, nil
	}
	return &pb.IssueUnitResponse{Success: true, Message: "unit issued"}, nil
}

func (h *GRPCHandler) RecordBooking(ctx context.Context, req *pb.RecordBookingRequest) (*pb.RecordBookingResponse, error) {
	err := h.registry.RecordBooking(ctx, req.GetPropertyId(), req.GetUnitIndex(), req.GetPayer(), req.GetCredential(), req.GetAmount())
	if err != nil {
		return &pb.RecordBookingResponse{Success: false, Message: failureMessage(err)}, nil
	}
	return &pb.RecordBookingResponse{Success: true, Message: "booking recorded"}, nil
}

func (h *GRPCHandler) DistributeRevenue(ctx context.Context, req *pb.DistributeRevenueRequest) (*pb.DistributeRevenueResponse, error) {
	paid, err := h.registry.DistributeRevenue(ctx, req.GetPropertyId(), req.GetClaimant())
	if err != nil {
		return &pb.DistributeRevenueResponse{Success: false, Message: failureMessage(err)}, nil
	}
	return &pb.DistributeRevenueResponse{Success: true, Message: "revenue distributed", PaidAmount: paid}, nil
}

func (h *GRPCHandler) CreatePool(ctx context.Context, req *pb.CreatePoolRequest) (*pb.CreatePoolResponse, error) {
	pool, err := h.pools.CreatePool(ctx, req.GetAuthority(), req.GetBaseAssetId(), req.GetFeeRateBps())
	if err != nil {
		return &pb.CreatePoolResponse{Success: false, Message: failureMessage(err)}, nil
	}
	return &pb.CreatePoolResponse{
		Success:      true,
		Message:      "pool created",
		PoolId:       pool.ID,
		ShareAssetId: pool.ShareAssetID,
	}, nil
}

func (h *GRPCHandler) ProvideLiquidity(ctx context.Context, req *pb.ProvideLiquidityRequest) (*pb.ProvideLiquidityResponse, error) {
	shares, err := h.pools.ProvideLiquidity(ctx, req.GetPoolId(), req.GetDepositor(), req.GetCredential(), req.GetAmount())
	if err != nil {
		return &pb.ProvideLiquidityResponse{Success: false, Message: failureMessage(err)}, nil
	}
	return &pb.ProvideLiquidityResponse{Success: true, Message: "liquidity provided", SharesMinted: shares}, nil
}

func (h *GRPCHandler) WithdrawLiquidity(ctx context.Context, req *pb.WithdrawLiquidityRequest) (*pb.WithdrawLiquidityResponse, error) {
	base, err := h.pools.WithdrawLiquidity(ctx, req.GetPoolId(), req.GetHolder(), req.GetCredential(), req.GetShares())
	if err != nil {
		return &pb.WithdrawLiquidityResponse{Success: false, Message: failureMessage(err)}, nil
	}
	return &pb.WithdrawLiquidityResponse{Success: true, Message: "liquidity withdrawn", BaseReturned: base}, nil
}
