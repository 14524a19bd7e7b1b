package db

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveDialogUpsert(t *testing.T) {
	dialog := Dialog{
		Name:        "TestDlg",
		Description: "Dialog used by the test suite.",
		Source:      "https://example.invalid/TestDlg.wxs",
		Controls: []DialogControl{
			{Control: "Title", Type: "Text", X: 15, Y: 6, Width: 200, Height: 15, Text: "Title"},
			{Control: "Next", Type: "PushButton", X: 236, Y: 243, Width: 56, Height: 17, Text: "Next"},
		},
	}

	created, err := Connection.SaveDialog(&dialog)
	require.Nil(t, err)
	assert.True(t, created)
	assert.NotEqual(t, uuid.Nil, dialog.ID)

	update := Dialog{
		Name:        "TestDlg",
		Description: "Updated description.",
		Controls: []DialogControl{
			{Control: "Cancel", Type: "PushButton", X: 304, Y: 243, Width: 56, Height: 17, Text: "Cancel"},
		},
	}
	created, err = Connection.SaveDialog(&update)
	require.Nil(t, err)
	assert.False(t, created)

	dialogs, _, err := Connection.ListDialogs(DialogFilter{Query: "TestDlg"})
	require.Nil(t, err)
	require.Len(t, dialogs, 1)
	assert.Equal(t, "Updated description.", dialogs[0].Description)

	// Controls were replaced wholesale and carry the dialog's key.
	require.Len(t, dialogs[0].Controls, 1)
	assert.Equal(t, "Cancel", dialogs[0].Controls[0].Control)
	assert.Equal(t, dialogs[0].ID, dialogs[0].Controls[0].DialogRef)
	assert.Equal(t, 0, dialogs[0].Controls[0].Position)
}
