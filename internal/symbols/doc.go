// Package symbols implements the symbol resolution engine behind the
// get_symbol_info tool.
//
// Resolution runs against two sources with a strict precedence rule:
//
//   - An exact title match (case-sensitive or case-insensitive
//     equality) from the module's Swift symbol graph returns
//     immediately and is never second-guessed.
//   - Anything less than exact is provisional: a substring match, a
//     "did you mean" suggestion list, or a failed extraction all yield
//     to a successful header-text hit in the module's Objective-C
//     headers.
//
// Callers therefore never receive a fuzzy Swift match when an exact one
// exists, while header hits are trusted over inexact Swift results.
package symbols
