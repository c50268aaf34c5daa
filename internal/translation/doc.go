// Package translation translates learning item names and spoken phrases
// into the child's language. Results are memoized per (text, language)
// pair and rate-limited backend calls are retried with exponential
// backoff. Translate never fails: on error the source text is returned.
package translation
