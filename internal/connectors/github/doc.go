// Package github implements the StarSource port against the GitHub REST
// API using go-github.
//
// The client composes three layers:
//
//   - a retrying transport (go-retryablehttp): up to 5 retries with
//     exponential backoff on 429/500/502/503/504, idempotent reads only
//   - an oauth2 token transport carrying the access credential
//   - a rate limiter that throttles proactively and, when the API
//     reports zero remaining quota, sleeps until reset plus a margin
//
// Pagination follows go-github's parsed Link header (Response.NextPage)
// until exhausted, handing each page to the caller before requesting the
// next so memory stays bounded for large starred sets.
package github
