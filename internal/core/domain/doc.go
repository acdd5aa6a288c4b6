// Package domain defines the core entities for gaze-stars.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - StarredRepo: One starred repository as persisted in the record store
//   - RepoIndex: The loaded, insertion-ordered view of the record store
//   - StarList: A user-curated star list (category)
//   - Membership: Per-list repository membership in page-scan order
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
