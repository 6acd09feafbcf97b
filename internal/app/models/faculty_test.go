package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocuments(t *testing.T) {
	t.Run("empty string is an empty list", func(t *testing.T) {
		docs, err := ParseDocuments("")
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("valid list round-trips", func(t *testing.T) {
		in := Documents{
			{Title: "CV", URL: "http://localhost/uploads/faculty/documents/a.pdf"},
			{Title: "Degree", URL: "http://localhost/uploads/faculty/documents/b.pdf"},
		}
		raw, err := in.Encode()
		require.NoError(t, err)

		out, err := ParseDocuments(raw)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("malformed JSON is rejected", func(t *testing.T) {
		_, err := ParseDocuments(`[{"title": "CV"`)
		assert.Error(t, err)
	})

	t.Run("wrong shape is rejected", func(t *testing.T) {
		_, err := ParseDocuments(`{"title": "CV"}`)
		assert.Error(t, err)
	})
}

func TestDocumentsEncodeNil(t *testing.T) {
	var docs Documents
	raw, err := docs.Encode()
	require.NoError(t, err)
	assert.Equal(t, "[]", raw, "nil encodes as an empty list, not null")
}

func TestPermissionAllows(t *testing.T) {
	p := &Permission{CanRead: true, CanUpdate: true}

	assert.True(t, p.Allows(ActionRead))
	assert.True(t, p.Allows(ActionUpdate))
	assert.False(t, p.Allows(ActionCreate))
	assert.False(t, p.Allows(ActionDelete))
	assert.False(t, p.Allows(Action("UNKNOWN")))

	var absent *Permission
	assert.False(t, absent.Allows(ActionRead), "missing row denies everything")
}

func TestAuditTouch(t *testing.T) {
	a := &Audit{CreatedBy: "alice"}
	require.Nil(t, a.ModifyBy)

	a.Touch("bob")
	require.NotNil(t, a.ModifyBy)
	assert.Equal(t, "bob", *a.ModifyBy)
	assert.NotNil(t, a.ModifyOn)
	assert.Equal(t, "alice", a.CreatedBy)
}
