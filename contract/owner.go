package main

//
// Administrator identity. Single-writer: only the current owner can hand
// it over or renounce it. The empty string is the renounced sentinel.
//

func requireOwner(chain SDKInterface) {
	owner := ownerAddress(chain)
	sender := chain.GetEnv().Sender.Address.String()
	require(owner != "" && sender == owner, errNotOwner, chain)
}

// initImpl records the deploying sender as administrator. One-shot; the
// runtime has no constructor hook, so deployment scripts call this first.
func initImpl(payload *string, chain SDKInterface) *string {
	require(payload == nil || *payload == "", "too many arguments", chain)
	require(ownerAddress(chain) == "", errAlreadyInitialized, chain)

	sender := chain.GetEnv().Sender.Address.String()
	setOwnerAddress(sender, chain)

	EmitOwnershipTransferred("", sender, chain)
	return nil
}

func transferOwnershipImpl(payload *string, chain SDKInterface) *string {
	require(payload != nil, "new owner is required", chain)
	in := *payload
	next := nextField(&in)
	require(in == "", "too many arguments", chain)
	require(next != "", "new owner is required", chain)

	requireOwner(chain)
	prev := ownerAddress(chain)
	setOwnerAddress(next, chain)

	EmitOwnershipTransferred(prev, next, chain)
	return nil
}

// renounceOwnershipImpl clears the administrator. Privileged operations
// abort from then on; there is no way back.
func renounceOwnershipImpl(payload *string, chain SDKInterface) *string {
	require(payload == nil || *payload == "", "too many arguments", chain)

	requireOwner(chain)
	prev := ownerAddress(chain)
	setOwnerAddress("", chain)

	EmitOwnershipTransferred(prev, "", chain)
	return nil
}
