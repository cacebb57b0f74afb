package cart

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewStore(nil)
	ctx := context.Background()

	s.AddItem(ctx, teff, 3)
	s.AddItem(ctx, berbere, 1)
	s.UpdateQuantity(ctx, teff.ID, 2)
	state := s.State()

	data, err := EncodeSnapshot(state)
	require.NoError(t, err)

	restored, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, state, restored, "serialize then restore must yield an equal state")
}

func TestSnapshotRoundTripEmpty(t *testing.T) {
	data, err := EncodeSnapshot(State{})
	require.NoError(t, err)

	restored, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Empty(t, restored.Items)
	assert.Equal(t, 0, restored.TotalItems)
	assert.Zero(t, restored.TotalAmount)
}

func TestDecodeSnapshotRejectsVersionMismatch(t *testing.T) {
	data, err := json.Marshal(map[string]interface{}{
		"version":      SnapshotVersion + 1,
		"items":        []LineItem{{ID: teff.ID, Product: teff, Quantity: 1, Subtotal: 8.99}},
		"total_items":  1,
		"total_amount": 8.99,
	})
	require.NoError(t, err)

	_, err = DecodeSnapshot(data)
	assert.ErrorIs(t, err, ErrSnapshotVersion)
}

func TestDecodeSnapshotRejectsCorruptPayload(t *testing.T) {
	_, err := DecodeSnapshot([]byte("{not json"))
	assert.Error(t, err)
}

func TestSnapshotCarriesVersionTag(t *testing.T) {
	data, err := EncodeSnapshot(State{})
	require.NoError(t, err)

	var env map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &env))
	assert.EqualValues(t, SnapshotVersion, env["version"])
}
