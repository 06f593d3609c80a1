package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseMapClone(t *testing.T) {
	original := ResponseMap{
		"1.1": {SelectedOption: "B", Score: 33, ActionPlan: "plano"},
	}

	clone := original.Clone()
	clone["1.1"] = Response{SelectedOption: "D", Score: 100}
	clone["2.1"] = Response{SelectedOption: "A"}

	assert.Equal(t, 33, original["1.1"].Score, "mutação do clone não pode vazar para o original")
	assert.Len(t, original, 1)
}

func TestResponseMapScan(t *testing.T) {
	payload := `{"1.1":{"selectedOption":"C","score":66,"observation":"","actionPlan":"plano"}}`

	var fromBytes ResponseMap
	require.NoError(t, fromBytes.Scan([]byte(payload)))
	assert.Equal(t, 66, fromBytes["1.1"].Score)

	// Drivers do Postgres podem entregar JSONB como string.
	var fromString ResponseMap
	require.NoError(t, fromString.Scan(payload))
	assert.Equal(t, fromBytes, fromString)

	var fromNil ResponseMap
	require.NoError(t, fromNil.Scan(nil))
	assert.Empty(t, fromNil)

	var bad ResponseMap
	assert.Error(t, bad.Scan(42))
}
