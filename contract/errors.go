package main

// Abort identifiers. These are stable strings the calling UI matches on,
// so change them only with a migration of the frontend.
const (
	errIncorrectFee       = "incorrect entry fee"
	errInvalidFeeAsset    = "invalid fee asset"
	errNoActiveEvent      = "no active event"
	errAlreadyActive      = "an event is already active"
	errEventFull          = "event is full"
	errNotRegistered      = "not registered for this event"
	errNoMoreScores       = "no more scores to submit"
	errNotReady           = "event not ready to end"
	errOnlyHighestScorer  = "only the highest scorer can end the event"
	errNotOwner           = "not the contract owner"
	errNoEventToClose     = "no active event to close"
	errNoFeesToWithdraw   = "no fees to withdraw"
	errDirectTransfer     = "direct transfers not allowed"
	errNoFundsAuthorized  = "no transfer authorized"
	errAlreadyInitialized = "already initialized"
)
