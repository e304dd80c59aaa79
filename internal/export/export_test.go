package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

var sample = []types.Contact{
	{Name: "Alice", Address: "1 Main St", Email: "alice@example.com", Phone: "5551234"},
	{Name: "Bob", Address: "2 Oak Ave", Email: "bob@example.org", Phone: "5559876"},
}

func TestXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, XLSX(&buf, sample))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Name", "Address", "Email", "Phone"}, rows[0])
	assert.Equal(t, []string{"Alice", "1 Main St", "alice@example.com", "5551234"}, rows[1])
	assert.Equal(t, []string{"Bob", "2 Oak Ave", "bob@example.org", "5559876"}, rows[2])
}

func TestXLSXPhoneStaysText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, XLSX(&buf, []types.Contact{
		{Name: "Zed", Address: "x", Email: "z@example.com", Phone: "0012345"},
	}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	phone, err := f.GetCellValue(SheetName, "D2")
	require.NoError(t, err)
	assert.Equal(t, "0012345", phone)
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, sample))

	var got []types.Contact
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample, got)
	assert.Contains(t, buf.String(), "\n  {")
}

func TestJSONEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, YAML(&buf, sample))

	var got []types.Contact
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample, got)
	assert.Contains(t, buf.String(), "- name: Alice")
}

func TestWrite(t *testing.T) {
	tests := []struct {
		format  string
		wantErr error
	}{
		{format: FormatXLSX},
		{format: FormatJSON},
		{format: FormatYAML},
		{format: "yml"},
		{format: "csv", wantErr: ErrUnknownFormat},
		{format: "", wantErr: ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			err := Write(&buf, tt.format, sample)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, buf.Len())
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, buf.Len())
		})
	}
}
