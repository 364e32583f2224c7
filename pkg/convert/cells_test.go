package convert

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewriteCells(t *testing.T) {
	in := []byte(`{
		"schemaVersion": "1.0",
		"variables": ["/x/a.py", "/x/sub/b.py"],
		"cells": [{"src": 0, "dest": 1, "values": {"Call": 3}}]
	}`)

	out, err := RewriteCells(in)
	require.NoError(t, err)

	var doc struct {
		SchemaVersion string   `json:"schemaVersion"`
		Variables     []string `json:"variables"`
		Cells         []Cell   `json:"cells"`
	}
	require.NoError(t, json.Unmarshal(out, &doc))

	assert.Equal(t, []string{"a.py", "b.py"}, doc.Variables)
	// Indices and opaque values pass through unchanged.
	require.Len(t, doc.Cells, 1)
	assert.Equal(t, 0, doc.Cells[0].Src)
	assert.Equal(t, 1, doc.Cells[0].Dest)
	assert.JSONEq(t, `{"Call": 3}`, string(doc.Cells[0].Values))
	// Unknown fields survive the rewrite.
	assert.Equal(t, "1.0", doc.SchemaVersion)
}

func TestRewriteCellsMalformed(t *testing.T) {
	_, err := RewriteCells([]byte(`not json`))
	assert.Error(t, err)

	_, err = RewriteCells([]byte(`{"cells": []}`))
	assert.Error(t, err, "missing variables array")
}

func TestValidateCells(t *testing.T) {
	ok := []byte(`{"variables": ["a", "b"], "cells": [{"src": 0, "dest": 1}]}`)
	assert.NoError(t, ValidateCells(ok))

	bad := []byte(`{"variables": ["a"], "cells": [{"src": 0, "dest": 3}]}`)
	assert.Error(t, ValidateCells(bad))
}
