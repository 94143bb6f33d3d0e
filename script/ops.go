package script

//go:generate go tool go-enum --marshal --nocase --names --values --mustparse

// Editing action a script step performs.
// ENUM(add, duplicate, delete, activate, rename, set, toggle, reset, add-stop, remove-stop, set-stop, animation, save-preset, delete-preset)
type Op int
