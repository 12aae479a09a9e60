package moldudp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marketfeeds/itchconv/internal/codec"
)

func TestDecodeHeader(t *testing.T) {
	body := []byte("SESSION001")
	body = append(body, 0, 0, 0, 0, 0, 0, 0, 100) // sequence = 100
	body = append(body, 0, 1)                     // count = 1

	c := codec.NewCursor(body)
	h := Decode(c)

	assert.Equal(t, "SESSION001", h.SessionString())
	assert.Equal(t, uint64(100), h.FirstSequence)
	assert.Equal(t, uint16(1), h.Count)
	assert.Equal(t, 0, c.Len())
}
