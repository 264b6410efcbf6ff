// Package docsearch implements the documentation search funnel behind
// the search_documentation tool.
//
// A query runs through three discovery strategies in a fixed order,
// each gated on whether the previous strategies already found enough:
//
//  1. Spotlight discovery over the documentation roots, with every
//     candidate path scored by additive relevance heuristics.
//  2. Header-text search over the SDK frameworks tree, when primary
//     discovery returned fewer results than the requested limit.
//  3. A capped scan of the common frameworks' symbol graphs, when
//     primary discovery returned fewer than five results.
//
// The gates are driven by result sufficiency, not by strategy failure:
// a strategy that errors contributes nothing and the funnel continues.
// The final merge policy picks between symbol-only, combined and
// path-only renderings; see Search.
//
// Relevance scores are additive integer bonuses (exact filename,
// header extension, frameworks/headers placement, prefix, documentation
// placement, substring, framework-name match) and ties keep discovery
// order.
package docsearch
