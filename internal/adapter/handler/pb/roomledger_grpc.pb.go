package pb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	RoomLedger_RegisterProperty_FullMethodName  = "/roomledger.v1.RoomLedger/RegisterProperty"
	RoomLedger_IssueUnit_FullMethodName         = "/roomledger.v1.RoomLedger/IssueUnit"
	RoomLedger_RecordBooking_FullMethodName     = "/roomledger.v1.RoomLedger/RecordBooking"
	RoomLedger_DistributeRevenue_FullMethodName = "/roomledger.v1.RoomLedger/DistributeRevenue"
	RoomLedger_CreatePool_FullMethodName        = "/roomledger.v1.RoomLedger/CreatePool"
	RoomLedger_ProvideLiquidity_FullMethodName  = "/roomledger.v1.RoomLedger/ProvideLiquidity"
	RoomLedger_WithdrawLiquidity_FullMethodName = "/roomledger.v1.RoomLedger/WithdrawLiquidity"
)

type RoomLedgerClient interface {
	RegisterProperty(ctx context.Context, in *RegisterPropertyRequest, opts ...grpc.CallOption) (*RegisterPropertyResponse, error)
	IssueUnit(ctx context.Context, in *IssueUnitRequest, opts ...grpc.CallOption) (*IssueUnitResponse, error)
	RecordBooking(ctx context.Context, in *RecordBookingRequest, opts ...grpc.CallOption) (*RecordBookingResponse, error)
	DistributeRevenue(ctx context.Context, in *DistributeRevenueRequest, opts ...grpc.CallOption) (*DistributeRevenueResponse, error)
	CreatePool(ctx context.Context, in *CreatePoolRequest, opts ...grpc.CallOption) (*CreatePoolResponse, error)
	ProvideLiquidity(ctx context.Context, in *ProvideLiquidityRequest, opts ...grpc.CallOption) (*ProvideLiquidityResponse, error)
	WithdrawLiquidity(ctx context.Context, in *WithdrawLiquidityRequest, opts ...grpc.CallOption) (*WithdrawLiquidityResponse, error)
}

type roomLedgerClient struct {
	cc grpc.ClientConnInterface
}

func NewRoomLedgerClient(cc grpc.ClientConnInterface) RoomLedgerClient {
	return &roomLedgerClient{cc}
}

func (c *roomLedgerClient) RegisterProperty(ctx context.Context, in *RegisterPropertyRequest, opts ...grpc.CallOption) (*RegisterPropertyResponse, error) {
	out := new(RegisterPropertyResponse)
	if err := c.cc.Invoke(ctx, RoomLedger_RegisterProperty_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roomLedgerClient) IssueUnit(ctx context.Context, in *IssueUnitRequest, opts ...grpc.CallOption) (*IssueUnitResponse, error) {
	out := new(IssueUnitResponse)
	if err := c.cc.Invoke(ctx, RoomLedger_IssueUnit_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roomLedgerClient) RecordBooking(ctx context.Context, in *RecordBookingRequest, opts ...grpc.CallOption) (*RecordBookingResponse, error) {
	out := new(RecordBookingResponse)
	if err := c.cc.Invoke(ctx, RoomLedger_RecordBooking_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roomLedgerClient) DistributeRevenue(ctx context.Context, in *DistributeRevenueRequest, opts ...grpc.CallOption) (*DistributeRevenueResponse, error) {
	out := new(DistributeRevenueResponse)
	if err := c.cc.Invoke(ctx, RoomLedger_DistributeRevenue_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roomLedgerClient) CreatePool(ctx context.Context, in *CreatePoolRequest, opts ...grpc.CallOption) (*CreatePoolResponse, error) {
	out := new(CreatePoolResponse)
	if err := c.cc.Invoke(ctx, RoomLedger_CreatePool_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roomLedgerClient) ProvideLiquidity(ctx context.Context, in *ProvideLiquidityRequest, opts ...grpc.CallOption) (*ProvideLiquidityResponse, error) {
	out := new(ProvideLiquidityResponse)
	if err := c.cc.Invoke(ctx, RoomLedger_ProvideLiquidity_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roomLedgerClient) WithdrawLiquidity(ctx context.Context, in *WithdrawLiquidityRequest, opts ...grpc.CallOption) (*WithdrawLiquidityResponse, error) {
	out := new(WithdrawLiquidityResponse)
	if err := c.cc.Invoke(ctx, RoomLedger_WithdrawLiquidity_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type RoomLedgerServer interface {
	RegisterProperty(context.Context, *RegisterPropertyRequest) (*RegisterPropertyResponse, error)
	IssueUnit(context.Context, *IssueUnitRequest) (*IssueUnitResponse, error)
	RecordBooking(context.Context, *RecordBookingRequest) (*RecordBookingResponse, error)
	DistributeRevenue(context.Context, *DistributeRevenueRequest) (*DistributeRevenueResponse, error)
	CreatePool(context.Context, *CreatePoolRequest) (*CreatePoolResponse, error)
	ProvideLiquidity(context.Context, *ProvideLiquidityRequest) (*ProvideLiquidityResponse, error)
	WithdrawLiquidity(context.Context, *WithdrawLiquidityRequest) (*WithdrawLiquidityResponse, error)
}

// UnimplementedRoomLedgerServer can be embedded for forward compatibility.
type UnimplementedRoomLedgerServer struct{}

func (UnimplementedRoomLedgerServer) RegisterProperty(context.Context, *RegisterPropertyRequest) (*RegisterPropertyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterProperty not implemented")
}

func (UnimplementedRoomLedgerServer) IssueUnit(context.Context, *IssueUnitRequest) (*IssueUnitResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IssueUnit not implemented")
}

func (UnimplementedRoomLedgerServer) RecordBooking(context.Context, *RecordBookingRequest) (*RecordBookingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordBooking not implemented")
}

func (UnimplementedRoomLedgerServer) DistributeRevenue(context.Context, *DistributeRevenueRequest) (*DistributeRevenueResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DistributeRevenue not implemented")
}

func (UnimplementedRoomLedgerServer) CreatePool(context.Context, *CreatePoolRequest) (*CreatePoolResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreatePool not implemented")
}

func (UnimplementedRoomLedgerServer) ProvideLiquidity(context.Context, *ProvideLiquidityRequest) (*ProvideLiquidityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProvideLiquidity not implemented")
}

func (UnimplementedRoomLedgerServer) WithdrawLiquidity(context.Context, *WithdrawLiquidityRequest) (*WithdrawLiquidityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method WithdrawLiquidity not implemented")
}

func RegisterRoomLedgerServer(s grpc.ServiceRegistrar, srv RoomLedgerServer) {
	s.RegisterService(&RoomLedger_ServiceDesc, srv)
}

func _RoomLedger_RegisterProperty_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterPropertyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomLedgerServer).RegisterProperty(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RoomLedger_RegisterProperty_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RoomLedgerServer).RegisterProperty(ctx, req.(*RegisterPropertyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoomLedger_IssueUnit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IssueUnitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomLedgerServer).IssueUnit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RoomLedger_IssueUnit_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RoomLedgerServer).IssueUnit(ctx, req.(*IssueUnitRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoomLedger_RecordBooking_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecordBookingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomLedgerServer).RecordBooking(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RoomLedger_RecordBooking_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RoomLedgerServer).RecordBooking(ctx, req.(*RecordBookingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoomLedger_DistributeRevenue_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DistributeRevenueRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomLedgerServer).DistributeRevenue(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RoomLedger_DistributeRevenue_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RoomLedgerServer).DistributeRevenue(ctx, req.(*DistributeRevenueRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoomLedger_CreatePool_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreatePoolRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomLedgerServer).CreatePool(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RoomLedger_CreatePool_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RoomLedgerServer).CreatePool(ctx, req.(*CreatePoolRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoomLedger_ProvideLiquidity_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProvideLiquidityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomLedgerServer).ProvideLiquidity(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RoomLedger_ProvideLiquidity_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RoomLedgerServer).ProvideLiquidity(ctx, req.(*ProvideLiquidityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoomLedger_WithdrawLiquidity_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(WithdrawLiquidityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomLedgerServer).WithdrawLiquidity(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RoomLedger_WithdrawLiquidity_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RoomLedgerServer).WithdrawLiquidity(ctx, req.(*WithdrawLiquidityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var RoomLedger_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "roomledger.v1.RoomLedger",
	HandlerType: (*RoomLedgerServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RegisterProperty", Handler: _RoomLedger_RegisterProperty_Handler},
		{MethodName: "IssueUnit", Handler: _RoomLedger_IssueUnit_Handler},
		{MethodName: "RecordBooking", Handler: _RoomLedger_RecordBooking_Handler},
		{MethodName: "DistributeRevenue", Handler: _RoomLedger_DistributeRevenue_Handler},
		{MethodName: "CreatePool", Handler: _RoomLedger_CreatePool_Handler},
		{MethodName: "ProvideLiquidity", Handler: _RoomLedger_ProvideLiquidity_Handler},
		{MethodName: "WithdrawLiquidity", Handler: _RoomLedger_WithdrawLiquidity_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "internal/adapter/handler/pb/roomledger.proto",
}
