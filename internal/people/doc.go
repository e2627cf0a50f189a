// Package people implements the birthday registry: a JSON array of person
// records kept sorted by birthdate. It provides schema validation of registry
// files, loading and saving, and the add and select operations used by the
// CLI commands.
package people
