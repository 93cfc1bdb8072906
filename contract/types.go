package main

import "drago-arena/sdk"

// ---------- Types & Constants ----------

const (
	// EntryFee is the exact amount (fixed-point 3) one entry slot costs.
	EntryFee uint64 = 1000 // 1.000 HIVE
	// EventDurationSecs is the join window; after it elapses the event
	// becomes claimable regardless of outstanding submissions.
	EventDurationSecs uint64 = 900
	// MaxEntries caps the slots sold per event.
	MaxEntries uint8 = 5
	// PrizeBps is the payout policy: the winner receives this share
	// (basis points) of the fees collected for the event, capped at the
	// pool balance. The remainder is the house fee.
	PrizeBps uint64 = 9000
)

// FeeAsset is the only token entries can be paid in.
const FeeAsset = sdk.AssetHive

// EventRecord is the single mutable record for the current event.
// HighestScorer stays empty until the first submission; scores only
// replace the leader when strictly greater.
type EventRecord struct {
	Active         bool
	StartTime      uint64
	TotalEntries   uint8
	SubmittedCount uint8
	HighestScore   uint64
	HighestScorer  string
}

// PlayerAccount tracks one identity's slots for the current event.
// Invariant: SubmissionsUsed <= EntriesOwned.
type PlayerAccount struct {
	Address         string
	EntriesOwned    uint8
	SubmissionsUsed uint8
}
