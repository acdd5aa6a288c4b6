// Package scraper implements the ListSource port by scraping the user's
// star-list pages.
//
// The upstream markup is an external contract: list discovery and member
// enumeration match fixed patterns against the HTML. The matching lives
// behind the ListPageParser port so the strategy (regex today) can be
// swapped for a DOM-based parser without touching the pipeline.
//
// Enumeration requests sequential numbered pages starting at 1 and stops
// at the first page that yields no matches. A transiently empty page is
// indistinguishable from the true end of a list; that ambiguity is part
// of the upstream contract and deliberately preserved.
package scraper
