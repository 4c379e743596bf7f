// Package config loads loadout's configuration.
//
// Sources are layered with koanf, later ones overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/loadout/config.toml or --config
//  3. LOADOUT_* environment variables (LOADOUT_INSTALL_STRICT=true sets
//     install.strict)
//
// The merged tree is decoded into Config with mapstructure. Paths are left
// unexpanded in Config; ListPath and ManifestPath resolve them on demand so
// a missing HOME only fails the commands that need it.
package config
