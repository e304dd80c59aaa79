// Package export writes a contact sequence as a spreadsheet, JSON or YAML.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Supported export formats.
const (
	FormatXLSX = "xlsx"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// SheetName is the worksheet the xlsx export writes to.
const SheetName = "Contacts"

// ErrUnknownFormat is returned by Write for a format it does not support.
var ErrUnknownFormat = errors.New("unknown export format")

// Formats lists the formats accepted by Write.
func Formats() []string {
	return []string{FormatXLSX, FormatJSON, FormatYAML}
}

// Write encodes contacts to w in the named format.
func Write(w io.Writer, format string, contacts []types.Contact) error {
	switch format {
	case FormatXLSX:
		return XLSX(w, contacts)
	case FormatJSON:
		return JSON(w, contacts)
	case FormatYAML, "yml":
		return YAML(w, contacts)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// JSON writes contacts as an indented JSON array.
func JSON(w io.Writer, contacts []types.Contact) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(nonNil(contacts))
}

// YAML writes contacts as a YAML sequence.
func YAML(w io.Writer, contacts []types.Contact) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(nonNil(contacts)); err != nil {
		return err
	}
	return enc.Close()
}

// XLSX writes contacts as a workbook with one sheet. The first row holds the
// bold column headers; each following row is one contact.
func XLSX(w io.Writer, contacts []types.Contact) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	header := []any{"Name", "Address", "Email", "Phone"}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return err
	}

	for i, c := range contacts {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{c.Name, c.Address, c.Email, c.Phone}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(SheetName, "A", "D", 28); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}

func nonNil(contacts []types.Contact) []types.Contact {
	if contacts == nil {
		return []types.Contact{}
	}
	return contacts
}
