package main

import (
	"encoding/json"
	"fmt"
	"testing"

	"drago-arena/sdk"
)

// fake sdk for testing

type drawRec struct {
	from   string
	amount int64
	asset  sdk.Asset
}

type transferRec struct {
	to     sdk.Address
	amount int64
	asset  sdk.Asset
	// raw event record bytes at the moment of transfer; empty means the
	// bookkeeping was finalized before the interaction
	evStateAtTransfer string
}

type FakeSDK struct {
	state     map[string]string
	env       sdk.Env
	logs      []string
	draws     []drawRec
	transfers []transferRec
	aborted   bool
	abortMsg  string
}

func NewFakeSDK(sender string, ts string) *FakeSDK {
	f := &FakeSDK{state: make(map[string]string)}
	f.setSender(sender)
	f.env.Timestamp = ts
	f.env.TxId = "tx-test"
	return f
}

func (f *FakeSDK) setSender(addr string) {
	f.env.Sender.Address = sdk.Address(addr)
	f.env.Caller = sdk.Address(addr)
}

func (f *FakeSDK) setTime(ts string) { f.env.Timestamp = ts }

// allow sets a single transfer.allow intent for the next call.
func (f *FakeSDK) allow(limit string, token sdk.Asset) {
	f.env.Intents = []sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"limit": limit, "token": token.String()},
	}}
}

func (f *FakeSDK) clearIntents() { f.env.Intents = nil }

func (f *FakeSDK) StateSetObject(key, value string) { f.state[key] = value }

func (f *FakeSDK) StateGetObject(key string) *string {
	val, ok := f.state[key]
	if !ok {
		return nil
	}
	return &val
}

func (f *FakeSDK) Abort(msg string) {
	f.aborted = true
	f.abortMsg = msg
	panic(fmt.Sprintf("Abort called: %s", msg))
}

func (f *FakeSDK) Log(msg string) { f.logs = append(f.logs, msg) }

func (f *FakeSDK) GetEnv() sdk.Env { return f.env }

func (f *FakeSDK) HiveDraw(amount int64, asset sdk.Asset) {
	f.draws = append(f.draws, drawRec{
		from:   f.env.Sender.Address.String(),
		amount: amount,
		asset:  asset,
	})
}

func (f *FakeSDK) HiveTransfer(to sdk.Address, amount int64, asset sdk.Asset) {
	f.transfers = append(f.transfers, transferRec{
		to:                to,
		amount:            amount,
		asset:             asset,
		evStateAtTransfer: f.state[evStateKey],
	})
}

// helper for check for aborts in testing mode
func expectAbort(t *testing.T, chain *FakeSDK, expectedMsg string) {
	t.Helper()
	if r := recover(); r == nil {
		t.Errorf("expected Abort panic, but function did not panic")
	} else {
		if !chain.aborted {
			t.Errorf("expected chain.Abort to be called, but it wasn't")
		}
		if chain.abortMsg != expectedMsg {
			t.Errorf("expected abort message %q, got %q", expectedMsg, chain.abortMsg)
		}
	}
}

// eventTypes decodes every logged event and returns the types in order.
func eventTypes(t *testing.T, chain *FakeSDK) []string {
	t.Helper()
	var types []string
	for _, l := range chain.logs {
		var ev Event
		if err := json.Unmarshal([]byte(l), &ev); err != nil {
			t.Fatalf("failed to decode event log %q: %v", l, err)
		}
		types = append(types, ev.Type)
	}
	return types
}

// lastEvent returns the most recent logged event of the given type.
func lastEvent(t *testing.T, chain *FakeSDK, eventType string) *Event {
	t.Helper()
	for i := len(chain.logs) - 1; i >= 0; i-- {
		var ev Event
		if err := json.Unmarshal([]byte(chain.logs[i]), &ev); err != nil {
			t.Fatalf("failed to decode event log %q: %v", chain.logs[i], err)
		}
		if ev.Type == eventType {
			return &ev
		}
	}
	return nil
}

// ---------- scenario helpers ----------

const (
	baseTime = "2025-06-01T12:00:00"
	feeHive  = "1.000"
)

// timeAfter returns baseTime shifted by offset seconds.
func timeAfter(offset uint64) string {
	chain := NewFakeSDK("hive:clock", baseTime)
	return unixToISO8601(parseISO8601ToUnix(baseTime, chain) + offset)
}

// startEventAs bootstraps owner init and starts an event as player.
func startEventAs(chain *FakeSDK, owner, player string) {
	chain.setSender(owner)
	initImpl(nil, chain)
	chain.setSender(player)
	chain.allow(feeHive, sdk.AssetHive)
	startGameImpl(nil, chain)
	chain.clearIntents()
}

// joinAs buys one more slot for player.
func joinAs(chain *FakeSDK, player string) {
	chain.setSender(player)
	chain.allow(feeHive, sdk.AssetHive)
	joinGameImpl(nil, chain)
	chain.clearIntents()
}

// submitAs submits one score for player.
func submitAs(chain *FakeSDK, player string, score uint64) {
	chain.setSender(player)
	payload := UInt64ToString(score)
	submitScoreImpl(&payload, chain)
}
