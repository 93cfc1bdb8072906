// Package sdk is the boundary between the contract and the chain runtime.
// The runtime serializes all calls into one total order and executes each
// call atomically: an Abort rolls back every state write of the call.
package sdk

// Address identifies an account on chain (e.g. "hive:someone").
type Address string

func (a Address) String() string { return string(a) }

// Asset names a transferable token.
type Asset string

const (
	AssetHive Asset = "hive"
	AssetHbd  Asset = "hbd"
)

func (a Asset) String() string { return string(a) }

// Intent is an authorization attached to the calling transaction,
// e.g. transfer.allow with a spend limit the contract may draw against.
type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

// Env carries the per-call environment provided by the runtime.
// Timestamp is the block time as "YYYY-MM-DDThh:mm:ss" UTC.
type Env struct {
	Sender struct {
		Address Address
	}
	Caller    Address
	TxId      string
	Intents   []Intent
	Timestamp string
}

// Host is implemented by the wasm runtime shim in production and by a
// fake in tests. Bind must be called before any contract entry point runs.
type Host interface {
	StateSetObject(key, value string)
	StateGetObject(key string) *string
	Abort(msg string)
	Log(msg string)
	GetEnv() Env
	HiveDraw(amount int64, asset Asset)
	HiveTransfer(to Address, amount int64, asset Asset)
}

var host Host

// Bind installs the runtime binding. The wasm entry shim calls this once
// at instantiation.
func Bind(h Host) { host = h }

func mustHost() Host {
	if host == nil {
		panic("sdk: runtime host not bound")
	}
	return host
}

func StateSetObject(key, value string)  { mustHost().StateSetObject(key, value) }
func StateGetObject(key string) *string { return mustHost().StateGetObject(key) }
func Abort(msg string)                  { mustHost().Abort(msg) }
func Log(msg string)                    { mustHost().Log(msg) }
func GetEnv() Env                       { return mustHost().GetEnv() }

// HiveDraw pulls amount (fixed-point 3) from the sender, authorized by a
// transfer.allow intent. Aborts the call if the authorization is missing
// or insufficient.
func HiveDraw(amount int64, asset Asset) { mustHost().HiveDraw(amount, asset) }

// HiveTransfer pays amount out of the contract's balance. Aborts the call
// if the balance does not cover it.
func HiveTransfer(to Address, amount int64, asset Asset) { mustHost().HiveTransfer(to, amount, asset) }
