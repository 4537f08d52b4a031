package diap

import (
	"encoding/json"
	"reflect"

	"github.com/diap-network/diap/errors"
)

// Persistent supports Marshal and Unmarshal. Any deterministic binary
// codec satisfies it.
type Persistent interface {
	Marshal() ([]byte, error)
	Unmarshal([]byte) error
}

// Msg is a request processed within a single transaction.
type Msg interface {
	Persistent

	// Validate performs a sanity check on the message content. It does
	// not have access to the database so only stateless validation can
	// be done.
	Validate() error

	// Path returns the routing path for this message, used by the
	// router to find a registered handler.
	Path() string
}

// Tx represents the transaction carried by the wire. Each transaction
// contains a single message to be processed.
type Tx interface {
	Persistent

	// GetMsg returns the action we wish to communicate.
	GetMsg() (Msg, error)
}

// LoadMsg extracts the message from the transaction, validates it and
// loads it into given destination. Destination must be a non-nil
// pointer to a message instance of the expected type.
func LoadMsg(tx Tx, destination Msg) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get message")
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}

	dst := reflect.ValueOf(destination)
	if dst.Kind() != reflect.Ptr || dst.IsNil() {
		return errors.Wrapf(errors.ErrType, "destination must be a non-nil pointer, got %T", destination)
	}
	val := reflect.ValueOf(msg)
	if val.Type() != dst.Type() {
		return errors.Wrapf(errors.ErrType, "want %T, got %T", destination, msg)
	}
	dst.Elem().Set(val.Elem())
	return nil
}

// CheckResult captures any single message result of the pre-execution
// validation step.
type CheckResult struct {
	// Data is a machine-parseable return value, like an id that can be
	// used for subsequent calls.
	Data []byte

	// Log is a human readable success message.
	Log string

	// GasAllocated is the gas the processing is expected to need.
	GasAllocated int64
}

// DeliverResult captures any single message result of the execution
// step.
type DeliverResult struct {
	// Data is a machine-parseable return value, like an id that can be
	// used for subsequent calls.
	Data []byte

	// Log is a human readable success message.
	Log string
}

// Handler is a core engine that can process a few specific messages.
// This could represent "open a channel", or "transfer tokens".
type Handler interface {
	Checker
	Deliverer
}

// Checker is a subset of Handler to verify the validity of a
// transaction. It is its own interface to allow better type control in
// Decorator.
type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer is a subset of Handler to execute a transaction. It is its
// own interface to allow better type control in Decorator.
type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator wraps a Handler to provide common functionality like
// authentication, logging or savepoints, to many Handlers.
type Decorator interface {
	Check(ctx Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry is an interface to register your handler, the setup side of
// a Router.
type Registry interface {
	// Handle assigns given handler to handle processing of every
	// message of the provided path.
	Handle(path string, h Handler)
}

// Options are the application initialization options. Each extension
// can look up its key and parse the raw JSON as desired.
type Options map[string]json.RawMessage

// ReadOptions reads the values stored under a given key, and parses the
// json into the given obj. Returns an error if it cannot parse. Noop
// and no error if the key is missing.
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	return json.Unmarshal(msg, obj)
}

// Initializer implementations are used to initialize extensions from
// genesis file contents.
type Initializer interface {
	FromGenesis(Options, KVStore) error
}
