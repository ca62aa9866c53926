package domain

// Distinguished scope names.
const (
	// RootScope is the implicit ancestor of every scope declared without an
	// explicit parent.
	RootScope = "root"

	// DetachedScope marks "no real parent, inherit nothing". It may only be
	// used as a parent reference, never as a scope name.
	DetachedScope = "detached"

	// DefaultScope is the scope assets land in when none is named.
	DefaultScope = "default"
)

// Component is one declared unit of configuration: a scope, its parent, and
// the assets it contributes. Declaration sources produce components; the
// graph builder turns them into storage content.
type Component struct {
	Scope  string
	Parent string

	// Override marks a component whose assets wholesale-replace the scope's
	// asset list instead of merging into it.
	Override bool

	Assets []Asset
}
