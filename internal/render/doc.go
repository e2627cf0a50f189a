// Package render writes a sequence of registry records to the terminal as a
// bordered fixed-width table, JSON, or YAML. Table headers and the empty-list
// placeholder are localized through golang.org/x/text message catalogs.
package render
