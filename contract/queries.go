package main

//
// Read accessors. Side-effect-free; pipe-delimited payloads like the
// mutating entry points so the frontend parses one format.
//

func eventActiveImpl(payload *string, chain SDKInterface) *string {
	ev := loadEvent(chain)
	out := "false"
	if ev != nil && ev.Active {
		out = "true"
	}
	return &out
}

// getCurrentEventDetailsImpl returns
// startTime|highestScore|highestScorer|totalEntries|submittedCount.
// All-zero fields when no event is active, matching what the display
// layer shows between events.
func getCurrentEventDetailsImpl(payload *string, chain SDKInterface) *string {
	ev := loadEvent(chain)
	if ev == nil {
		ev = &EventRecord{}
	}

	out := make([]byte, 0, 48+len(ev.HighestScorer))
	out = appendU64(out, ev.StartTime)
	out = append(out, '|')
	out = appendU64(out, ev.HighestScore)
	out = append(out, '|')
	out = append(out, ev.HighestScorer...)
	out = append(out, '|')
	out = appendU8(out, ev.TotalEntries)
	out = append(out, '|')
	out = appendU8(out, ev.SubmittedCount)

	s := string(out)
	return &s
}

// getRegisteredPlayersImpl returns the distinct registered identities in
// insertion order, pipe-joined. Empty immediately after any finalize.
func getRegisteredPlayersImpl(payload *string, chain SDKInterface) *string {
	players := loadPlayers(chain)

	var out []byte
	for i, p := range players {
		if i > 0 {
			out = append(out, '|')
		}
		out = append(out, p.Address...)
	}

	s := string(out)
	return &s
}

func getPoolBalanceImpl(payload *string, chain SDKInterface) *string {
	s := UInt64ToString(poolBalance(chain))
	return &s
}

// getConfigImpl returns entryFee|eventDurationSecs|maxEntries|prizeBps.
func getConfigImpl(payload *string, chain SDKInterface) *string {
	out := make([]byte, 0, 32)
	out = appendU64(out, EntryFee)
	out = append(out, '|')
	out = appendU64(out, EventDurationSecs)
	out = append(out, '|')
	out = appendU8(out, MaxEntries)
	out = append(out, '|')
	out = appendU64(out, PrizeBps)

	s := string(out)
	return &s
}
