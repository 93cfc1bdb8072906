package main

import (
	"testing"

	"drago-arena/sdk"
	"github.com/stretchr/testify/assert"
	treq "github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	chain := NewFakeSDK("hive:owner", baseTime)
	initImpl(nil, chain)

	assert.Equal(t, "hive:owner", ownerAddress(chain))
	ev := lastEvent(t, chain, "ownershipTransferred")
	treq.NotNil(t, ev)
	assert.Equal(t, "", ev.Attributes["previous"])
	assert.Equal(t, "hive:owner", ev.Attributes["new"])
}

func TestInit_Twice(t *testing.T) {
	chain := NewFakeSDK("hive:owner", baseTime)
	initImpl(nil, chain)

	chain.setSender("hive:other")
	defer expectAbort(t, chain, errAlreadyInitialized)
	initImpl(nil, chain)
}

// Scenario: an event with no submissions is closed by the admin; the
// notification carries the sentinel identity and score 0, and a fresh
// start succeeds afterwards.
func TestAdminCloseEvent_NoSubmissions(t *testing.T) {
	chain := NewFakeSDK("hive:p1", baseTime)
	startEventAs(chain, "hive:owner", "hive:p1")

	chain.setSender("hive:owner")
	adminCloseEventImpl(nil, chain)

	closed := lastEvent(t, chain, "eventClosedByAdmin")
	treq.NotNil(t, closed)
	assert.Equal(t, "", closed.Attributes["scorer"])
	assert.Equal(t, "0", closed.Attributes["score"])

	assert.Nil(t, loadEvent(chain))
	players := getRegisteredPlayersImpl(nil, chain)
	assert.Equal(t, "", *players)
	// no currency moved, the fee stays in the pool
	assert.Empty(t, chain.transfers)
	assert.Equal(t, EntryFee, poolBalance(chain))

	chain.setSender("hive:p2")
	chain.allow(feeHive, sdk.AssetHive)
	startGameImpl(nil, chain)
	assert.Equal(t, "true", *eventActiveImpl(nil, chain))
}

func TestAdminCloseEvent_CapturesLeader(t *testing.T) {
	chain := NewFakeSDK("hive:p1", baseTime)
	startEventAs(chain, "hive:owner", "hive:p1")
	submitAs(chain, "hive:p1", 100)

	chain.setSender("hive:owner")
	adminCloseEventImpl(nil, chain)

	closed := lastEvent(t, chain, "eventClosedByAdmin")
	treq.NotNil(t, closed)
	assert.Equal(t, "hive:p1", closed.Attributes["scorer"])
	assert.Equal(t, "100", closed.Attributes["score"])
}

func TestAdminCloseEvent_NotOwner(t *testing.T) {
	chain := NewFakeSDK("hive:p1", baseTime)
	startEventAs(chain, "hive:owner", "hive:p1")

	chain.setSender("hive:p1")
	defer expectAbort(t, chain, errNotOwner)
	adminCloseEventImpl(nil, chain)
}

func TestAdminCloseEvent_NoEvent(t *testing.T) {
	chain := NewFakeSDK("hive:owner", baseTime)
	initImpl(nil, chain)

	defer expectAbort(t, chain, errNoEventToClose)
	adminCloseEventImpl(nil, chain)
}

func TestWithdrawFees(t *testing.T) {
	chain := NewFakeSDK("hive:p1", baseTime)
	startEventAs(chain, "hive:owner", "hive:p1")
	joinAs(chain, "hive:p2")

	chain.setSender("hive:owner")
	withdrawFeesImpl(nil, chain)

	assert.Equal(t, uint64(0), poolBalance(chain))
	treq.Len(t, chain.transfers, 1)
	assert.Equal(t, sdk.Address("hive:owner"), chain.transfers[0].to)
	assert.Equal(t, int64(2*EntryFee), chain.transfers[0].amount)

	withdrawn := lastEvent(t, chain, "feesWithdrawn")
	treq.NotNil(t, withdrawn)
	assert.Equal(t, "hive:owner", withdrawn.Attributes["to"])
	assert.Equal(t, UInt64ToString(2*EntryFee), withdrawn.Attributes["amount"])
}

func TestWithdrawFees_Empty(t *testing.T) {
	chain := NewFakeSDK("hive:owner", baseTime)
	initImpl(nil, chain)

	defer expectAbort(t, chain, errNoFeesToWithdraw)
	withdrawFeesImpl(nil, chain)
}

func TestWithdrawFees_NotOwner(t *testing.T) {
	chain := NewFakeSDK("hive:p1", baseTime)
	startEventAs(chain, "hive:owner", "hive:p1")

	chain.setSender("hive:p1")
	defer expectAbort(t, chain, errNotOwner)
	withdrawFeesImpl(nil, chain)
}

func TestTransferOwnership(t *testing.T) {
	chain := NewFakeSDK("hive:p1", baseTime)
	startEventAs(chain, "hive:owner", "hive:p1")

	chain.setSender("hive:owner")
	next := "hive:newowner"
	transferOwnershipImpl(&next, chain)
	assert.Equal(t, "hive:newowner", ownerAddress(chain))

	moved := lastEvent(t, chain, "ownershipTransferred")
	treq.NotNil(t, moved)
	assert.Equal(t, "hive:owner", moved.Attributes["previous"])
	assert.Equal(t, "hive:newowner", moved.Attributes["new"])

	// the new owner holds the privileges now
	chain.setSender("hive:newowner")
	withdrawFeesImpl(nil, chain)
	treq.Len(t, chain.transfers, 1)
	assert.Equal(t, sdk.Address("hive:newowner"), chain.transfers[0].to)
}

func TestTransferOwnership_NotOwner(t *testing.T) {
	chain := NewFakeSDK("hive:owner", baseTime)
	initImpl(nil, chain)

	chain.setSender("hive:intruder")
	next := "hive:intruder"
	defer expectAbort(t, chain, errNotOwner)
	transferOwnershipImpl(&next, chain)
}

func TestRenounceOwnership(t *testing.T) {
	chain := NewFakeSDK("hive:p1", baseTime)
	startEventAs(chain, "hive:owner", "hive:p1")

	chain.setSender("hive:owner")
	renounceOwnershipImpl(nil, chain)
	assert.Equal(t, "", ownerAddress(chain))

	// privileged calls are gone for good, even for the former owner
	defer expectAbort(t, chain, errNotOwner)
	adminCloseEventImpl(nil, chain)
}

func TestGetConfig(t *testing.T) {
	chain := NewFakeSDK("hive:p1", baseTime)
	cfg := getConfigImpl(nil, chain)
	assert.Equal(t, "1000|900|5|9000", *cfg)
}

func TestGetCurrentEventDetails(t *testing.T) {
	chain := NewFakeSDK("hive:p1", baseTime)
	startEventAs(chain, "hive:owner", "hive:p1")
	submitAs(chain, "hive:p1", 42)

	start := parseISO8601ToUnix(baseTime, chain)
	want := UInt64ToString(start) + "|42|hive:p1|1|1"
	details := getCurrentEventDetailsImpl(nil, chain)
	assert.Equal(t, want, *details)
}

func TestGetCurrentEventDetails_NoEvent(t *testing.T) {
	chain := NewFakeSDK("hive:p1", baseTime)
	details := getCurrentEventDetailsImpl(nil, chain)
	assert.Equal(t, "0|0||0|0", *details)
}
