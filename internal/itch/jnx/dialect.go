package jnx

import (
	"github.com/marketfeeds/itchconv/internal/colschema"
	"github.com/marketfeeds/itchconv/internal/itch"
)

type dialect struct{}

// Dialect is the JNX Equities PTS ITCH v1.6 itch.Dialect implementation.
var Dialect itch.Dialect = dialect{}

func (dialect) Name() string                { return "jnx" }
func (dialect) Columns() []colschema.Column { return Columns() }
func (dialect) NewRecord() itch.Record      { return NewRecord() }
