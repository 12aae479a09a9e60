package nasdaq

import (
	"github.com/marketfeeds/itchconv/internal/colschema"
	"github.com/marketfeeds/itchconv/internal/itch"
)

type dialect struct{}

// Dialect is the NASDAQ TotalView-ITCH v5.0 itch.Dialect implementation.
var Dialect itch.Dialect = dialect{}

func (dialect) Name() string                { return "nasdaq" }
func (dialect) Columns() []colschema.Column { return Columns() }
func (dialect) NewRecord() itch.Record      { return NewRecord() }
