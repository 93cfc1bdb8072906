package main

// State layout. One event at a time, so keys are fixed rather than
// id-prefixed; the whole record set is replaced between events.
const (
	evStateKey   = "ev_state"
	evPlayersKey = "ev_players"
	evPoolKey    = "ev_pool"
	evOwnerKey   = "ev_owner"
)

// saveEvent packs the event record into the compact binary layout:
// active u8, startTime u64, totalEntries u8, submittedCount u8,
// highestScore u64, highestScorer (len16 + data).
func saveEvent(ev *EventRecord, chain SDKInterface) {
	out := make([]byte, 0, 24+len(ev.HighestScorer))

	if ev.Active {
		out = append(out, 1)
	} else {
		out = append(out, 0)
	}
	out = appendBinU64(out, ev.StartTime)
	out = append(out, ev.TotalEntries)
	out = append(out, ev.SubmittedCount)
	out = appendBinU64(out, ev.HighestScore)
	out = appendString16(out, ev.HighestScorer, chain)

	chain.StateSetObject(evStateKey, string(out))
}

// loadEvent reads the event record. Returns nil when no event has ever
// been started or the previous one was finalized.
func loadEvent(chain SDKInterface) *EventRecord {
	ptr := chain.StateGetObject(evStateKey)
	if ptr == nil || *ptr == "" {
		return nil
	}

	r := &rd{b: []byte(*ptr), chain: chain}
	ev := &EventRecord{
		Active:         r.u8() == 1,
		StartTime:      r.u64(),
		TotalEntries:   r.u8(),
		SubmittedCount: r.u8(),
		HighestScore:   r.u64(),
		HighestScorer:  r.str(),
	}
	return ev
}

// savePlayers writes the registry in insertion order:
// count u8, then per player: address (len16 + data), entries u8, used u8.
func savePlayers(players []*PlayerAccount, chain SDKInterface) {
	out := make([]byte, 0, 1+len(players)*24)
	require(len(players) <= int(MaxEntries), "registry overflow", chain)
	out = append(out, byte(len(players)))
	for _, p := range players {
		out = appendString16(out, p.Address, chain)
		out = append(out, p.EntriesOwned, p.SubmissionsUsed)
	}
	chain.StateSetObject(evPlayersKey, string(out))
}

func loadPlayers(chain SDKInterface) []*PlayerAccount {
	ptr := chain.StateGetObject(evPlayersKey)
	if ptr == nil || *ptr == "" {
		return nil
	}

	r := &rd{b: []byte(*ptr), chain: chain}
	n := int(r.u8())
	players := make([]*PlayerAccount, 0, n)
	for i := 0; i < n; i++ {
		players = append(players, &PlayerAccount{
			Address:         r.str(),
			EntriesOwned:    r.u8(),
			SubmissionsUsed: r.u8(),
		})
	}
	return players
}

// findPlayer returns the account for addr, or nil if not registered.
func findPlayer(players []*PlayerAccount, addr string) *PlayerAccount {
	for _, p := range players {
		if p.Address == addr {
			return p
		}
	}
	return nil
}

// clearEventState erases the event record and the whole registry.
// Settlement paths call this before any outbound transfer.
func clearEventState(chain SDKInterface) {
	chain.StateSetObject(evStateKey, "")
	chain.StateSetObject(evPlayersKey, "")
}

// ---------- Pool balance ----------

func poolBalance(chain SDKInterface) uint64 {
	ptr := chain.StateGetObject(evPoolKey)
	if ptr == nil || *ptr == "" {
		return 0
	}
	return parseU64Fast(*ptr, chain)
}

func setPoolBalance(n uint64, chain SDKInterface) {
	chain.StateSetObject(evPoolKey, UInt64ToString(n))
}

// ---------- Owner ----------

// ownerAddress returns the administrator identity, empty when the
// contract is uninitialized or ownership was renounced.
func ownerAddress(chain SDKInterface) string {
	ptr := chain.StateGetObject(evOwnerKey)
	if ptr == nil {
		return ""
	}
	return *ptr
}

func setOwnerAddress(addr string, chain SDKInterface) {
	chain.StateSetObject(evOwnerKey, addr)
}
