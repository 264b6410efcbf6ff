package types

import "strings"

// SymbolRecord represents a single symbol extracted from a module's
// symbol graph. Declaration and Documentation are empty when the graph
// carries no fragments or doc comment for the symbol.
type SymbolRecord struct {
	Title          string
	KindIdentifier string
	Declaration    string
	Documentation  string
}

// Kind returns the short kind name, the last dot-separated segment of
// the kind identifier (e.g. "swift.struct" -> "struct").
func (r SymbolRecord) Kind() string {
	if i := strings.LastIndex(r.KindIdentifier, "."); i >= 0 {
		return r.KindIdentifier[i+1:]
	}
	return r.KindIdentifier
}

// SymbolMatch is a lightweight hit produced when scanning the common
// frameworks' symbol graphs for a documentation query.
type SymbolMatch struct {
	Framework string
	Symbol    string
	Kind      string
}

// Validate checks if the symbol record is well-formed.
func (r SymbolRecord) Validate() error {
	if r.Title == "" {
		return ErrEmptyTitle
	}
	if r.KindIdentifier == "" {
		return ErrEmptyKind
	}
	return nil
}
