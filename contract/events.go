package main

// Event represents the common structure for all emitted events.
// Each event has a type and a set of key/value attributes.
type Event struct {
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
}

// emitEvent constructs an Event object with the given type and attributes,
// and logs it as JSON for the display layer to pick up.
func emitEvent(eventType string, attributes map[string]string, chain SDKInterface) {
	event := Event{
		Type:       eventType,
		Attributes: attributes,
	}
	chain.Log(ToJSON(event, eventType+" event data", chain))
}

// EmitGameStarted emits an event when a new game event opens.
func EmitGameStarted(startTime uint64, chain SDKInterface) {
	emitEvent("gameStarted", map[string]string{
		"startTime": UInt64ToString(startTime),
	}, chain)
}

// EmitPlayerJoined emits an event for every slot sold, including the
// starter's first slot.
func EmitPlayerJoined(player string, chain SDKInterface) {
	emitEvent("playerJoined", map[string]string{
		"player": player,
	}, chain)
}

// EmitScoreSubmitted emits an event for every accepted submission,
// leader or not.
func EmitScoreSubmitted(player string, score uint64, chain SDKInterface) {
	emitEvent("scoreSubmitted", map[string]string{
		"player": player,
		"score":  UInt64ToString(score),
	}, chain)
}

// EmitNewHighScore emits an event when a submission takes the lead.
func EmitNewHighScore(player string, score uint64, chain SDKInterface) {
	emitEvent("newHighScore", map[string]string{
		"player": player,
		"score":  UInt64ToString(score),
	}, chain)
}

// EmitEventEnded emits an event when the winner settles the prize.
func EmitEventEnded(winner string, score uint64, chain SDKInterface) {
	emitEvent("eventEnded", map[string]string{
		"winner": winner,
		"score":  UInt64ToString(score),
	}, chain)
}

// EmitEventClosedByAdmin emits an event when the administrator force-closes.
// Scorer is empty and score 0 when nothing was submitted.
func EmitEventClosedByAdmin(scorer string, score uint64, chain SDKInterface) {
	emitEvent("eventClosedByAdmin", map[string]string{
		"scorer": scorer,
		"score":  UInt64ToString(score),
	}, chain)
}

// EmitFeesWithdrawn emits an event when the administrator sweeps the pool.
func EmitFeesWithdrawn(to string, amount uint64, chain SDKInterface) {
	emitEvent("feesWithdrawn", map[string]string{
		"to":     to,
		"amount": UInt64ToString(amount),
	}, chain)
}

// EmitOwnershipTransferred emits an event on every administrator change,
// including init and renounce.
func EmitOwnershipTransferred(previous, next string, chain SDKInterface) {
	emitEvent("ownershipTransferred", map[string]string{
		"previous": previous,
		"new":      next,
	}, chain)
}

// EmitFundsReceived emits an event for a passive currency receipt.
func EmitFundsReceived(from string, amount uint64, chain SDKInterface) {
	emitEvent("fundsReceived", map[string]string{
		"from":   from,
		"amount": UInt64ToString(amount),
	}, chain)
}
