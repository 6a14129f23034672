// Package fuzzdex is a fuzzy-search library for tree-shaped records:
// strings, numbers, booleans, objects, and arrays. It combines a bitap
// fuzzy-matching kernel with an extended boolean query language and a
// JSON-shaped logical query parser, and ranks matches by a weighted,
// field-norm-adjusted combined score.
//
// A Fuse indexes a slice of records against a set of declared key paths
// and serves three query styles:
//
//   - Fuse.Search: a single free-text pattern, fuzzy-matched (or, with
//     Options.UseExtendedSearch, parsed as an extended boolean query)
//     against every declared key.
//   - ExtendedSearch / NewExtendedSearch: the extended query language
//     directly, for callers that want to run it against one piece of text
//     without building a full index.
//   - CompileLogicalQuery / Fuse.SearchLogical: a JSON-shaped AND/OR tree of
//     per-key patterns.
package fuzzdex
