package main

import "drago-arena/sdk"

//
// Settlement. Every path here finalizes bookkeeping before any outbound
// transfer, so a reentrant call during the payout observes an already
// inactive event and cannot claim again.
//

// prizeAmount applies the payout policy: PrizeBps of the fees collected
// for this event, capped at whatever the pool still holds (the admin may
// have swept fees mid-event).
func prizeAmount(totalEntries uint8, pool uint64) uint64 {
	p := uint64(totalEntries) * EntryFee * PrizeBps / 10_000
	if p > pool {
		p = pool
	}
	return p
}

// eventReady reports whether settlement is allowed: every sold slot has
// submitted, or the event window has elapsed.
func eventReady(ev *EventRecord, now uint64) bool {
	return ev.SubmittedCount == ev.TotalEntries || now-ev.StartTime >= EventDurationSecs
}

func endEventAndClaimPrizeImpl(payload *string, chain SDKInterface) *string {
	require(payload == nil || *payload == "", "too many arguments", chain)

	ev := loadEvent(chain)
	require(ev != nil && ev.Active, errNoActiveEvent, chain)
	require(eventReady(ev, blockNow(chain)), errNotReady, chain)

	sender := chain.GetEnv().Sender.Address.String()
	require(ev.HighestScorer != "" && sender == ev.HighestScorer, errOnlyHighestScorer, chain)

	winner := ev.HighestScorer
	score := ev.HighestScore
	pool := poolBalance(chain)
	prize := prizeAmount(ev.TotalEntries, pool)

	// effects before interaction
	clearEventState(chain)
	setPoolBalance(pool-prize, chain)

	if prize > 0 {
		chain.HiveTransfer(sdk.Address(winner), int64(prize), FeeAsset)
	}

	EmitEventEnded(winner, score, chain)
	return nil
}

func adminCloseEventImpl(payload *string, chain SDKInterface) *string {
	require(payload == nil || *payload == "", "too many arguments", chain)
	requireOwner(chain)

	ev := loadEvent(chain)
	require(ev != nil && ev.Active, errNoEventToClose, chain)

	// scorer stays empty and score 0 when nothing was submitted
	scorer := ev.HighestScorer
	score := ev.HighestScore

	clearEventState(chain)

	EmitEventClosedByAdmin(scorer, score, chain)
	return nil
}

// withdrawFeesImpl sweeps the entire pool to the administrator, active
// event or not. Prize settlement caps against the remaining pool, so a
// mid-event sweep shrinks the payout instead of breaking it.
func withdrawFeesImpl(payload *string, chain SDKInterface) *string {
	require(payload == nil || *payload == "", "too many arguments", chain)
	requireOwner(chain)

	pool := poolBalance(chain)
	require(pool > 0, errNoFeesToWithdraw, chain)

	owner := ownerAddress(chain)
	setPoolBalance(0, chain)
	chain.HiveTransfer(sdk.Address(owner), int64(pool), FeeAsset)

	EmitFeesWithdrawn(owner, pool, chain)
	return nil
}
