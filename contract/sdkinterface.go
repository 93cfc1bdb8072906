package main

import (
	"drago-arena/sdk"
)

// --- SDK interface abstraction ---
//
// Every impl function takes the chain through this interface so tests can
// run against a FakeSDK with a scripted sender, intents and block time.

type SDKInterface interface {
	StateSetObject(key, value string)
	StateGetObject(key string) *string
	Abort(msg string)
	Log(msg string)
	GetEnv() sdk.Env
	HiveDraw(amount int64, asset sdk.Asset)
	HiveTransfer(to sdk.Address, amount int64, asset sdk.Asset)
}

// RealSDK is the production implementation forwarding to the bound runtime.
type RealSDK struct{}

func (RealSDK) StateSetObject(key, value string)  { sdk.StateSetObject(key, value) }
func (RealSDK) StateGetObject(key string) *string { return sdk.StateGetObject(key) }
func (RealSDK) Abort(msg string)                  { sdk.Abort(msg) }
func (RealSDK) Log(msg string)                    { sdk.Log(msg) }
func (RealSDK) GetEnv() sdk.Env                   { return sdk.GetEnv() }
func (RealSDK) HiveDraw(amount int64, asset sdk.Asset) {
	sdk.HiveDraw(amount, asset)
}
func (RealSDK) HiveTransfer(to sdk.Address, amount int64, asset sdk.Asset) {
	sdk.HiveTransfer(to, amount, asset)
}
