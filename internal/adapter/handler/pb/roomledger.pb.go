// Package pb holds the wire types and service definition for the RoomLedger
// RPC surface. The messages mirror roomledger.proto and are maintained by
// hand in the legacy message form, which the gRPC proto codec accepts via
// its protoadapt bridge.
package pb

import "fmt"

type RegisterPropertyRequest struct {
	Authority  string `protobuf:"bytes,1,opt,name=authority,proto3" json:"authority,omitempty"`
	UnitCount  uint64 `protobuf:"varint,2,opt,name=unit_count,json=unitCount,proto3" json:"unit_count,omitempty"`
	FeeRateBps uint32 `protobuf:"varint,3,opt,name=fee_rate_bps,json=feeRateBps,proto3" json:"fee_rate_bps,omitempty"`
}

func (m *RegisterPropertyRequest) Reset()         { *m = RegisterPropertyRequest{} }
func (m *RegisterPropertyRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*RegisterPropertyRequest) ProtoMessage()    {}

func (m *RegisterPropertyRequest) GetAuthority() string {
	if m != nil {
		return m.Authority
	}
	return ""
}

func (m *RegisterPropertyRequest) GetUnitCount() uint64 {
	if m != nil {
		return m.UnitCount
	}
	return 0
}

func (m *RegisterPropertyRequest) GetFeeRateBps() uint32 {
	if m != nil {
		return m.FeeRateBps
	}
	return 0
}

type RegisterPropertyResponse struct {
	Success      bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message      string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	PropertyId   string `protobuf:"bytes,3,opt,name=property_id,json=propertyId,proto3" json:"property_id,omitempty"`
	ClaimAssetId string `protobuf:"bytes,4,opt,name=claim_asset_id,json=claimAssetId,proto3" json:"claim_asset_id,omitempty"`
}

func (m *RegisterPropertyResponse) Reset()         { *m = RegisterPropertyResponse{} }
func (m *RegisterPropertyResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*RegisterPropertyResponse) ProtoMessage()    {}

func (m *RegisterPropertyResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *RegisterPropertyResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

func (m *RegisterPropertyResponse) GetPropertyId() string {
	if m != nil {
		return m.PropertyId
	}
	return ""
}

func (m *RegisterPropertyResponse) GetClaimAssetId() string {
	if m != nil {
		return m.ClaimAssetId
	}
	return ""
}

type IssueUnitRequest struct {
	PropertyId string `protobuf:"bytes,1,opt,name=property_id,json=propertyId,proto3" json:"property_id,omitempty"`
	UnitIndex  uint64 `protobuf:"varint,2,opt,name=unit_index,json=unitIndex,proto3" json:"unit_index,omitempty"`
	Recipient  string `protobuf:"bytes,3,opt,name=recipient,proto3" json:"recipient,omitempty"`
}

func (m *IssueUnitRequest) Reset()         { *m = IssueUnitRequest{} }
func (m *IssueUnitRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*IssueUnitRequest) ProtoMessage()    {}

func (m *IssueUnitRequest) GetPropertyId() string {
	if m != nil {
		return m.PropertyId
	}
	return ""
}

func (m *IssueUnitRequest) GetUnitIndex() uint64 {
	if m != nil {
		return m.UnitIndex
	}
	return 0
}

func (m *IssueUnitRequest) GetRecipient() string {
	if m != nil {
		return m.Recipient
	}
	return ""
}

type IssueUnitResponse struct {
	Success bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *IssueUnitResponse) Reset()         { *m = IssueUnitResponse{} }
func (m *IssueUnitResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*IssueUnitResponse) ProtoMessage()    {}

func (m *IssueUnitResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *IssueUnitResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

type RecordBookingRequest struct {
	PropertyId string `protobuf:"bytes,1,opt,name=property_id,json=propertyId,proto3" json:"property_id,omitempty"`
	UnitIndex  uint64 `protobuf:"varint,2,opt,name=unit_index,json=unitIndex,proto3" json:"unit_index,omitempty"`
	Payer      string `protobuf:"bytes,3,opt,name=payer,proto3" json:"payer,omitempty"`
	Credential string `protobuf:"bytes,4,opt,name=credential,proto3" json:"credential,omitempty"`
	Amount     uint64 `protobuf:"varint,5,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *RecordBookingRequest) Reset()         { *m = RecordBookingRequest{} }
func (m *RecordBookingRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*RecordBookingRequest) ProtoMessage()    {}

func (m *RecordBookingRequest) GetPropertyId() string {
	if m != nil {
		return m.PropertyId
	}
	return ""
}

func (m *RecordBookingRequest) GetUnitIndex() uint64 {
	if m != nil {
		return m.UnitIndex
	}
	return 0
}

func (m *RecordBookingRequest) GetPayer() string {
	if m != nil {
		return m.Payer
	}
	return ""
}

func (m *RecordBookingRequest) GetCredential() string {
	if m != nil {
		return m.Credential
	}
	return ""
}

func (m *RecordBookingRequest) GetAmount() uint64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

type RecordBookingResponse struct {
	Success bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *RecordBookingResponse) Reset()         { *m = RecordBookingResponse{} }
func (m *RecordBookingResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*RecordBookingResponse) ProtoMessage()    {}

func (m *RecordBookingResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *RecordBookingResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

type DistributeRevenueRequest struct {
	PropertyId string `protobuf:"bytes,1,opt,name=property_id,json=propertyId,proto3" json:"property_id,omitempty"`
	Claimant   string `protobuf:"bytes,2,opt,name=claimant,proto3" json:"claimant,omitempty"`
}

func (m *DistributeRevenueRequest) Reset()         { *m = DistributeRevenueRequest{} }
func (m *DistributeRevenueRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*DistributeRevenueRequest) ProtoMessage()    {}

func (m *DistributeRevenueRequest) GetPropertyId() string {
	if m != nil {
		return m.PropertyId
	}
	return ""
}

func (m *DistributeRevenueRequest) GetClaimant() string {
	if m != nil {
		return m.Claimant
	}
	return ""
}

type DistributeRevenueResponse struct {
	Success    bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message    string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	PaidAmount uint64 `protobuf:"varint,3,opt,name=paid_amount,json=paidAmount,proto3" json:"paid_amount,omitempty"`
}

func (m *DistributeRevenueResponse) Reset()         { *m = DistributeRevenueResponse{} }
func (m *DistributeRevenueResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*DistributeRevenueResponse) ProtoMessage()    {}

func (m *DistributeRevenueResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *DistributeRevenueResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

func (m *DistributeRevenueResponse) GetPaidAmount() uint64 {
	if m != nil {
		return m.PaidAmount
	}
	return 0
}

type CreatePoolRequest struct {
	Authority   string `protobuf:"bytes,1,opt,name=authority,proto3" json:"authority,omitempty"`
	BaseAssetId string `protobuf:"bytes,2,opt,name=base_asset_id,json=baseAssetId,proto3" json:"base_asset_id,omitempty"`
	FeeRateBps  uint32 `protobuf:"varint,3,opt,name=fee_rate_bps,json=feeRateBps,proto3" json:"fee_rate_bps,omitempty"`
}

func (m *CreatePoolRequest) Reset()         { *m = CreatePoolRequest{} }
func (m *CreatePoolRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*CreatePoolRequest) ProtoMessage()    {}

func (m *CreatePoolRequest) GetAuthority() string {
	if m != nil {
		return m.Authority
	}
	return ""
}

func (m *CreatePoolRequest) GetBaseAssetId() string {
	if m != nil {
		return m.BaseAssetId
	}
	return ""
}

func (m *CreatePoolRequest) GetFeeRateBps() uint32 {
	if m != nil {
		return m.FeeRateBps
	}
	return 0
}

type CreatePoolResponse struct {
	Success      bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message      string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	PoolId       string `protobuf:"bytes,3,opt,name=pool_id,json=poolId,proto3" json:"pool_id,omitempty"`
	ShareAssetId string `protobuf:"bytes,4,opt,name=share_asset_id,json=shareAssetId,proto3" json:"share_asset_id,omitempty"`
}

func (m *CreatePoolResponse) Reset()         { *m = CreatePoolResponse{} }
func (m *CreatePoolResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*CreatePoolResponse) ProtoMessage()    {}

func (m *CreatePoolResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *CreatePoolResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

func (m *CreatePoolResponse) GetPoolId() string {
	if m != nil {
		return m.PoolId
	}
	return ""
}

func (m *CreatePoolResponse) GetShareAssetId() string {
	if m != nil {
		return m.ShareAssetId
	}
	return ""
}

type ProvideLiquidityRequest struct {
	PoolId     string `protobuf:"bytes,1,opt,name=pool_id,json=poolId,proto3" json:"pool_id,omitempty"`
	Depositor  string `protobuf:"bytes,2,opt,name=depositor,proto3" json:"depositor,omitempty"`
	Credential string `protobuf:"bytes,3,opt,name=credential,proto3" json:"credential,omitempty"`
	Amount     uint64 `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *ProvideLiquidityRequest) Reset()         { *m = ProvideLiquidityRequest{} }
func (m *ProvideLiquidityRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*ProvideLiquidityRequest) ProtoMessage()    {}

func (m *ProvideLiquidityRequest) GetPoolId() string {
	if m != nil {
		return m.PoolId
	}
	return ""
}

func (m *ProvideLiquidityRequest) GetDepositor() string {
	if m != nil {
		return m.Depositor
	}
	return ""
}

func (m *ProvideLiquidityRequest) GetCredential() string {
	if m != nil {
		return m.Credential
	}
	return ""
}

func (m *ProvideLiquidityRequest) GetAmount() uint64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

type ProvideLiquidityResponse struct {
	Success      bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message      string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	SharesMinted uint64 `protobuf:"varint,3,opt,name=shares_minted,json=sharesMinted,proto3" json:"shares_minted,omitempty"`
}

func (m *ProvideLiquidityResponse) Reset()         { *m = ProvideLiquidityResponse{} }
func (m *ProvideLiquidityResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*ProvideLiquidityResponse) ProtoMessage()    {}

func (m *ProvideLiquidityResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *ProvideLiquidityResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

func (m *ProvideLiquidityResponse) GetSharesMinted() uint64 {
	if m != nil {
		return m.SharesMinted
	}
	return 0
}

type WithdrawLiquidityRequest struct {
	PoolId     string `protobuf:"bytes,1,opt,name=pool_id,json=poolId,proto3" json:"pool_id,omitempty"`
	Holder     string `protobuf:"bytes,2,opt,name=holder,proto3" json:"holder,omitempty"`
	Credential string `protobuf:"bytes,3,opt,name=credential,proto3" json:"credential,omitempty"`
	Shares     uint64 `protobuf:"varint,4,opt,name=shares,proto3" json:"shares,omitempty"`
}

func (m *WithdrawLiquidityRequest) Reset()         { *m = WithdrawLiquidityRequest{} }
func (m *WithdrawLiquidityRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*WithdrawLiquidityRequest) ProtoMessage()    {}

func (m *WithdrawLiquidityRequest) GetPoolId() string {
	if m != nil {
		return m.PoolId
	}
	return ""
}

func (m *WithdrawLiquidityRequest) GetHolder() string {
	if m != nil {
		return m.Holder
	}
	return ""
}

func (m *WithdrawLiquidityRequest) GetCredential() string {
	if m != nil {
		return m.Credential
	}
	return ""
}

func (m *WithdrawLiquidityRequest) GetShares() uint64 {
	if m != nil {
		return m.Shares
	}
	return 0
}

type WithdrawLiquidityResponse struct {
	Success      bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message      string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	BaseReturned uint64 `protobuf:"varint,3,opt,name=base_returned,json=baseReturned,proto3" json:"base_returned,omitempty"`
}

func (m *WithdrawLiquidityResponse) Reset()         { *m = WithdrawLiquidityResponse{} }
func (m *WithdrawLiquidityResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*WithdrawLiquidityResponse) ProtoMessage()    {}

func (m *WithdrawLiquidityResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func (m *WithdrawLiquidityResponse) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

func (m *WithdrawLiquidityResponse) GetBaseReturned() uint64 {
	if m != nil {
		return m.BaseReturned
	}
	return 0
}
