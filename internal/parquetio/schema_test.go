package parquetio

import (
	"testing"

	"github.com/apache/arrow/go/v12/arrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketfeeds/itchconv/internal/colschema"
)

func TestBuildSchemaOrderAndNullability(t *testing.T) {
	columns := []colschema.Column{
		{Name: "pcap_index", Kind: colschema.KindUint64, Required: true},
		{Name: "message_type", Kind: colschema.KindCode, Required: true},
		{Name: "order_number", Kind: colschema.KindUint64},
		{Name: "session", Kind: colschema.KindRawString, Required: true},
	}

	schema := BuildSchema(columns)
	require.Equal(t, 4, len(schema.Fields()))

	assert.Equal(t, "pcap_index", schema.Field(0).Name)
	assert.False(t, schema.Field(0).Nullable)
	assert.True(t, schema.Field(0).Type.ID() == arrow.UINT64)

	assert.Equal(t, "message_type", schema.Field(1).Name)
	assert.Equal(t, arrow.UINT8, schema.Field(1).Type.ID())

	assert.Equal(t, "order_number", schema.Field(2).Name)
	assert.True(t, schema.Field(2).Nullable)

	assert.Equal(t, "session", schema.Field(3).Name)
	assert.False(t, schema.Field(3).Nullable)
	assert.Equal(t, arrow.STRING, schema.Field(3).Type.ID())
}

func TestBuildSchemaTimestampUnitIsMicros(t *testing.T) {
	columns := []colschema.Column{
		{Name: "pcap_timestamp", Kind: colschema.KindTimestampMicros, Required: true},
	}
	schema := BuildSchema(columns)
	tsType, ok := schema.Field(0).Type.(*arrow.TimestampType)
	require.True(t, ok)
	assert.Equal(t, arrow.Microsecond, tsType.Unit)
}
