package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderItems_ValueAndScan(t *testing.T) {
	items := OrderItems{{MusicID: "music-1", Title: "Psalm 23", Image: "https://img/1.png"}}

	value, err := items.Value()
	assert.NoError(t, err)
	assert.JSONEq(t, `[{"musicId":"music-1","title":"Psalm 23","image":"https://img/1.png"}]`, value.(string))

	var fromString OrderItems
	assert.NoError(t, fromString.Scan(value))
	assert.Equal(t, items, fromString)

	var fromBytes OrderItems
	assert.NoError(t, fromBytes.Scan([]byte(value.(string))))
	assert.Equal(t, items, fromBytes)
}

func TestOrderItems_NilAndInvalid(t *testing.T) {
	value, err := OrderItems(nil).Value()
	assert.NoError(t, err)
	assert.Equal(t, "[]", value)

	var items OrderItems
	assert.NoError(t, items.Scan(nil))
	assert.Empty(t, items)

	assert.Error(t, items.Scan(42))
}

func TestBeforeCreate_AssignsID(t *testing.T) {
	order := &Order{}
	assert.NoError(t, order.BeforeCreate(nil))
	assert.Len(t, order.ID, 36)

	membership := &Membership{ID: "keep-me"}
	assert.NoError(t, membership.BeforeCreate(nil))
	assert.Equal(t, "keep-me", membership.ID)
}
