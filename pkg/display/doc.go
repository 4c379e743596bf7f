// Package display renders install reports and the plugin manifest for the
// terminal or as YAML.
package display
