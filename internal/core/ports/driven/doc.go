// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them:
//
//   - StarSource: Paginated fetch of starred repositories (GitHub API)
//   - ListSource: Star-list discovery and member enumeration (scraping)
//   - ListPageParser: The narrow HTML-matching capability behind ListSource
//   - StarStore: Durable line-delimited record stream
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or scraper package
package driven
