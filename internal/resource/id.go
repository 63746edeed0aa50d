package resource

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// GlobalID is the zero value of ID.
var GlobalID = ID{}

// ID uniquely identifies a tab, a registry or a pager binding. A tab's ID is
// its stable identity: it survives renumbering and payload changes.
type ID struct {
	id   uuid.UUID
	kind Kind
}

func NewID(k Kind) ID {
	return ID{id: uuid.New(), kind: k}
}

func (id ID) Kind() Kind {
	return id.kind
}

// String returns a short human readable form, e.g. tab-1f0c9a3b.
func (id ID) String() string {
	if id == GlobalID {
		return Global.String()
	}
	return fmt.Sprintf("%s-%s", id.kind, hex.EncodeToString(id.id[:4]))
}

func (id ID) LogValue() slog.Value {
	return slog.StringValue(id.String())
}

// ParseKind parses the kind prefix of a string produced by ID.String.
func ParseKind(s string) (Kind, error) {
	prefix, _, _ := strings.Cut(s, "-")
	for _, k := range []Kind{Global, Tab, Registry, Binding} {
		if k.String() == prefix {
			return k, nil
		}
	}
	return Global, fmt.Errorf("invalid identifier: %s", s)
}
