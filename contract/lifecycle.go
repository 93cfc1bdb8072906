package main

//
// Entry slot sales: startGame opens a fresh event with the first slot,
// joinGame sells further slots while the window is open and slots remain.
//

// authorizedAmount finds the first transfer.allow intent on the calling
// transaction and returns the authorized amount (fixed-point 3).
// Returns 0 when the transaction carries no funding intent.
func authorizedAmount(chain SDKInterface) uint64 {
	for _, intent := range chain.GetEnv().Intents {
		if intent.Type != "transfer.allow" {
			continue
		}
		token := intent.Args["token"]
		require(token == FeeAsset.String(), errInvalidFeeAsset, chain)
		return parseFixedPoint3(intent.Args["limit"], chain)
	}
	return 0
}

// drawEntryFee validates the funding intent covers exactly one entry fee
// and pulls it into the contract. Any other amount is rejected; entries
// are always exactly EntryFee, never change given.
func drawEntryFee(chain SDKInterface) {
	amt := authorizedAmount(chain)
	require(amt == EntryFee, errIncorrectFee, chain)
	chain.HiveDraw(int64(EntryFee), FeeAsset)
}

func startGameImpl(payload *string, chain SDKInterface) *string {
	require(payload == nil || *payload == "", "too many arguments", chain)

	ev := loadEvent(chain)
	require(ev == nil || !ev.Active, errAlreadyActive, chain)

	drawEntryFee(chain)

	sender := chain.GetEnv().Sender.Address.String()
	now := blockNow(chain)

	ev = &EventRecord{
		Active:       true,
		StartTime:    now,
		TotalEntries: 1,
	}
	players := []*PlayerAccount{{Address: sender, EntriesOwned: 1}}

	saveEvent(ev, chain)
	savePlayers(players, chain)
	setPoolBalance(poolBalance(chain)+EntryFee, chain)

	EmitGameStarted(now, chain)
	EmitPlayerJoined(sender, chain)
	return nil
}

func joinGameImpl(payload *string, chain SDKInterface) *string {
	require(payload == nil || *payload == "", "too many arguments", chain)

	ev := loadEvent(chain)
	active := ev != nil && ev.Active
	// the join window closes strictly at EventDurationSecs
	if active && blockNow(chain)-ev.StartTime >= EventDurationSecs {
		active = false
	}
	require(active, errNoActiveEvent, chain)

	amt := authorizedAmount(chain)
	require(amt == EntryFee, errIncorrectFee, chain)
	require(ev.TotalEntries < MaxEntries, errEventFull, chain)

	chain.HiveDraw(int64(EntryFee), FeeAsset)

	sender := chain.GetEnv().Sender.Address.String()
	players := loadPlayers(chain)
	if p := findPlayer(players, sender); p != nil {
		p.EntriesOwned++
	} else {
		players = append(players, &PlayerAccount{Address: sender, EntriesOwned: 1})
	}
	ev.TotalEntries++

	saveEvent(ev, chain)
	savePlayers(players, chain)
	setPoolBalance(poolBalance(chain)+EntryFee, chain)

	EmitPlayerJoined(sender, chain)
	return nil
}

// depositImpl accepts a bare currency receipt into the pool. Any payload
// means the sender expected an instruction to run, so reject outright
// rather than silently keeping the funds.
func depositImpl(payload *string, chain SDKInterface) *string {
	require(payload == nil || *payload == "", errDirectTransfer, chain)

	amt := authorizedAmount(chain)
	require(amt > 0, errNoFundsAuthorized, chain)
	chain.HiveDraw(int64(amt), FeeAsset)
	setPoolBalance(poolBalance(chain)+amt, chain)

	EmitFundsReceived(chain.GetEnv().Sender.Address.String(), amt, chain)
	return nil
}
