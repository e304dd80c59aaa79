// Package types defines the Contact record, the Backend and Book interfaces,
// the validation and search functions over contacts, and the standard error
// values for the contacts storage system.
//
// Everything here is a pure function of its inputs. Storage lives behind
// Backend; the in-memory store that ties the two together is internal.
package types
