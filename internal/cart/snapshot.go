package cart

import (
	"encoding/json"
	"errors"
	"fmt"
)

// SnapshotVersion tags persisted cart snapshots. Bump it when the State
// shape changes; snapshots with a different version are discarded on
// restore rather than decoded into a mismatched shape.
const SnapshotVersion = 1

// ErrSnapshotVersion marks a snapshot written by an incompatible schema.
var ErrSnapshotVersion = errors.New("unsupported cart snapshot version")

type snapshotEnvelope struct {
	Version     int        `json:"version"`
	Items       []LineItem `json:"items"`
	TotalItems  int        `json:"total_items"`
	TotalAmount float64    `json:"total_amount"`
}

// EncodeSnapshot serializes the full cart state with its schema version.
func EncodeSnapshot(state State) ([]byte, error) {
	return json.Marshal(snapshotEnvelope{
		Version:     SnapshotVersion,
		Items:       state.Items,
		TotalItems:  state.TotalItems,
		TotalAmount: state.TotalAmount,
	})
}

// DecodeSnapshot restores a cart state from its serialized form. Corrupt
// payloads and version mismatches return an error; callers fall back to an
// empty cart instead of failing session startup.
func DecodeSnapshot(data []byte) (State, error) {
	var env snapshotEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return State{}, fmt.Errorf("corrupt cart snapshot: %w", err)
	}
	if env.Version != SnapshotVersion {
		return State{}, fmt.Errorf("%w: %d", ErrSnapshotVersion, env.Version)
	}

	return State{
		Items:       env.Items,
		TotalItems:  env.TotalItems,
		TotalAmount: env.TotalAmount,
	}, nil
}
