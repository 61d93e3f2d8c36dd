package domain

import "time"

type EventType string

const (
	EventBooking            EventType = "booking"
	EventDistribution       EventType = "distribution"
	EventLiquidityProvided  EventType = "liquidity_provided"
	EventLiquidityWithdrawn EventType = "liquidity_withdrawn"
)

// Event is an immutable notification describing a completed state
// transition. Events are fire-and-forget: the emitting operation never
// waits on, or fails because of, their delivery.
type Event struct {
	ID         string
	Type       EventType
	RecordID   string // property or pool id
	UnitIndex  uint64
	Actor      string
	Amount     uint64
	Shares     uint64
	OccurredAt time.Time
}
