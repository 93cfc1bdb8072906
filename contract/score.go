package main

//
// Score submissions. One slot buys exactly one submission; the leader
// only changes on strictly greater scores, so the first to reach a value
// keeps the lead against later ties.
//

func submitScoreImpl(payload *string, chain SDKInterface) *string {
	require(payload != nil, "score is required", chain)
	in := *payload
	score := parseU64Fast(nextField(&in), chain)
	require(in == "", "too many arguments", chain)

	ev := loadEvent(chain)
	require(ev != nil && ev.Active, errNoActiveEvent, chain)

	sender := chain.GetEnv().Sender.Address.String()
	players := loadPlayers(chain)
	p := findPlayer(players, sender)
	require(p != nil && p.EntriesOwned > 0, errNotRegistered, chain)
	require(p.SubmissionsUsed < p.EntriesOwned, errNoMoreScores, chain)

	p.SubmissionsUsed++
	ev.SubmittedCount++

	// An empty scorer means nothing was submitted yet, so the very first
	// submission installs its sender as leader even at score 0.
	if ev.HighestScorer == "" || score > ev.HighestScore {
		ev.HighestScore = score
		ev.HighestScorer = sender
		EmitNewHighScore(sender, score, chain)
	}

	saveEvent(ev, chain)
	savePlayers(players, chain)

	EmitScoreSubmitted(sender, score, chain)
	return nil
}
