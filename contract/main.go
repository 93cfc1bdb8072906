package main

//
// Exported entry points. Thin wrappers binding the live runtime; all
// logic lives in the *Impl functions so tests can drive them with a
// FakeSDK.
//

//go:wasmexport init
func Init(payload *string) *string {
	return initImpl(payload, RealSDK{})
}

//go:wasmexport startGame
func StartGame(payload *string) *string {
	return startGameImpl(payload, RealSDK{})
}

//go:wasmexport joinGame
func JoinGame(payload *string) *string {
	return joinGameImpl(payload, RealSDK{})
}

//go:wasmexport submitScore
func SubmitScore(payload *string) *string {
	return submitScoreImpl(payload, RealSDK{})
}

//go:wasmexport endEventAndClaimPrize
func EndEventAndClaimPrize(payload *string) *string {
	return endEventAndClaimPrizeImpl(payload, RealSDK{})
}

//go:wasmexport adminCloseEvent
func AdminCloseEvent(payload *string) *string {
	return adminCloseEventImpl(payload, RealSDK{})
}

//go:wasmexport withdrawFees
func WithdrawFees(payload *string) *string {
	return withdrawFeesImpl(payload, RealSDK{})
}

//go:wasmexport transferOwnership
func TransferOwnership(payload *string) *string {
	return transferOwnershipImpl(payload, RealSDK{})
}

//go:wasmexport renounceOwnership
func RenounceOwnership(payload *string) *string {
	return renounceOwnershipImpl(payload, RealSDK{})
}

//go:wasmexport deposit
func Deposit(payload *string) *string {
	return depositImpl(payload, RealSDK{})
}

//go:wasmexport eventActive
func EventActive(payload *string) *string {
	return eventActiveImpl(payload, RealSDK{})
}

//go:wasmexport getCurrentEventDetails
func GetCurrentEventDetails(payload *string) *string {
	return getCurrentEventDetailsImpl(payload, RealSDK{})
}

//go:wasmexport getRegisteredPlayers
func GetRegisteredPlayers(payload *string) *string {
	return getRegisteredPlayersImpl(payload, RealSDK{})
}

//go:wasmexport getPoolBalance
func GetPoolBalance(payload *string) *string {
	return getPoolBalanceImpl(payload, RealSDK{})
}

//go:wasmexport getConfig
func GetConfig(payload *string) *string {
	return getConfigImpl(payload, RealSDK{})
}

func main() {}
