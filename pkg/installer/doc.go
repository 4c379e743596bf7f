// Package installer runs the list-driven install passes.
//
// A pass handles one category (Homebrew, uv tools or VSCode extensions): it
// reads the category's list file, checks the package manager is available
// and installs each entry in file order. Passes are best effort. A missing
// list or command skips the category, a failed entry is reported and the
// loop moves on; nothing is retried or rolled back.
//
// Categories always run in the fixed order homebrew, uv, vscode, one after
// the other, and each entry's external command finishes before the next
// entry is read.
package installer
