// Package paths resolves the filesystem locations loadout works with.
//
// Home-relative list paths (`~/...` or `$HOME/...`) are expanded against the
// user's home directory, and the loadout config directory follows the XDG
// base directory layout through github.com/adrg/xdg. Each location can
// be overridden by an environment variable so tests and unusual setups never
// touch the real home directory.
package paths
