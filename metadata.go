package diap

import (
	"github.com/diap-network/diap/errors"
)

// Metadata is carried by every persisted model and message. The schema
// version declares which format the entity is serialized with, so that
// data written by an older release can be recognized and upgraded.
type Metadata struct {
	Schema uint32 `json:"schema"`
}

// Validate returns an error if the metadata is not valid. Schema
// versions are one-based, a zero value means the metadata was not
// initialized.
func (m *Metadata) Validate() error {
	if m == nil {
		return errors.Wrap(errors.ErrMetadata, "missing metadata")
	}
	if m.Schema < 1 {
		return errors.Wrap(errors.ErrMetadata, "schema version required")
	}
	return nil
}

// Copy returns a copy of this object. This method is helpful when
// implementing orm.CloneableData interface to make a copy of the
// header.
func (m *Metadata) Copy() *Metadata {
	if m == nil {
		return nil
	}
	cpy := *m
	return &cpy
}
