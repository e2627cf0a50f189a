// Package config manages user-level settings stored at ~/.people/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the display language and default output format used by the display and
// select commands.
package config
