// Package codec provides the serialization format used for all
// persistent state. Values are encoded as CBOR with Core Deterministic
// Encoding (RFC 8949, section 4.2) so the same logical data always
// produces identical bytes. Unknown fields are ignored when decoding,
// which keeps old binaries readable by newer schema versions.
package codec

import (
	"github.com/fxamacker/cbor/v2"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: cannot initialize encoder: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("codec: cannot initialize decoder: " + err.Error())
	}
}

// Marshal encodes v using deterministic CBOR encoding.
func Marshal(v interface{}) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func Unmarshal(data []byte, v interface{}) error {
	return decMode.Unmarshal(data, v)
}

// RawMessage is a raw encoded CBOR value. It can be used to delay
// decoding or to pre-encode output.
type RawMessage = cbor.RawMessage
