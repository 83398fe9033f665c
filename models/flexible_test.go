package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleStringUnmarshal(t *testing.T) {
	var doc struct {
		A FlexibleString `json:"a"`
		B FlexibleString `json:"b"`
		C FlexibleString `json:"c"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"a":"123","b":456,"c":7.5}`), &doc))
	assert.Equal(t, "123", doc.A.String())
	assert.Equal(t, "456", doc.B.String())
	assert.Equal(t, "7.5", doc.C.String())

	n, err := doc.B.ToInt64()
	require.NoError(t, err)
	assert.EqualValues(t, 456, n)

	_, err = doc.C.ToInt64()
	assert.Error(t, err)
}

func TestFlexibleStringRejectsObjects(t *testing.T) {
	var fs FlexibleString
	assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &fs))
}
