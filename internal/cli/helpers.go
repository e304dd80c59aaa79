// Shared helpers for contacts CLI commands.
package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/contacts/pkg/contacts"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Output formats for list and show.
const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// Messages shown after successful commands.
const (
	msgAdded      = "Contact added successfully!"
	msgUpdated    = "Contact updated successfully!"
	msgDeleted    = "Contact deleted successfully!"
	msgNoContacts = "No contacts found."
	msgConfirm    = "Are you sure you want to delete this contact? [y/N]"
)

var errUnknownOutput = errors.New("unknown output format")

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// openBook resolves the book configuration and opens it. The caller must
// Close the returned book.
func (a *app) openBook() (types.Book, error) {
	cfg, err := a.bookConfig()
	if err != nil {
		return nil, err
	}
	return contacts.Open(cfg, a.logger)
}

// withBook opens the book, runs fn and closes the book.
func (a *app) withBook(fn func(book types.Book) error) error {
	book, err := a.openBook()
	if err != nil {
		return err
	}
	defer book.Close()
	return fn(book)
}

// outputFormat returns the configured output format.
func (a *app) outputFormat() (string, error) {
	format := strings.ToLower(a.config.GetString(cfgKeyOutput))
	switch format {
	case outputTable, outputJSON, outputYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: table, json, yaml)", errUnknownOutput, format)
	}
}

// findContact returns the contact addressed by key, matching name, email or
// phone exactly.
func findContact(book types.Book, key string) (types.Contact, error) {
	c, err := types.Lookup(book.Search(""), key)
	if err != nil {
		return types.Contact{}, fmt.Errorf("%w: %q", err, key)
	}
	return c, nil
}

// writeContacts renders contacts to w in format.
func writeContacts(w io.Writer, format string, list []types.Contact) error {
	switch format {
	case outputJSON:
		data, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal contacts: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case outputYAML:
		data, err := yaml.Marshal(list)
		if err != nil {
			return fmt.Errorf("marshal contacts: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		if len(list) == 0 {
			_, err := fmt.Fprintln(w, msgNoContacts)
			return err
		}
		_, err := fmt.Fprintln(w, contactTable(list))
		return err
	}
}

// writeContact renders a single contact to w in format.
func writeContact(w io.Writer, format string, c types.Contact) error {
	switch format {
	case outputJSON:
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal contact: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case outputYAML:
		data, err := yaml.Marshal(c)
		if err != nil {
			return fmt.Errorf("marshal contact: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		_, err := fmt.Fprintf(w, "Name:    %s\nAddress: %s\nEmail:   %s\nPhone:   %s\n",
			c.Name, c.Address, c.Email, c.Phone)
		return err
	}
}

func contactTable(list []types.Contact) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "ADDRESS", "EMAIL", "PHONE").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, c := range list {
		t.Row(c.Fields()...)
	}
	return t.Render()
}

// confirm writes prompt to the command's output and reads a y/yes answer
// from its input. Anything else, including EOF, is a no.
func confirm(cmd *cobra.Command, prompt string) (bool, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt+" ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
