package diag

import (
	_ "embed"
	"encoding/json"
	"sync"
)

//go:embed codes.json
var codesJSON []byte

// CodeEntry is a single diagnostic code definition.
type CodeEntry struct {
	ID    string `json:"id"`    // e.g., "LEX0001"
	Title string `json:"title"` // short human title e.g., "unterminated string"
	Help  string `json:"help"`  // optional default help text
}

// Registry is the top-level catalog format.
type Registry struct {
	Lexer  map[string]CodeEntry `json:"lexer"`
	Parser map[string]CodeEntry `json:"parser"`
}

const (
	DomainLexer  = "lexer"
	DomainParser = "parser"
)

var (
	regOnce sync.Once
	reg     Registry
	regErr  error
)

func load() error {
	regOnce.Do(func() {
		if len(codesJSON) == 0 {
			return // empty catalog is allowed
		}
		regErr = json.Unmarshal(codesJSON, &reg)
	})
	return regErr
}

// Lookup returns a code entry by (domain, key).
func Lookup(domain, key string) (CodeEntry, bool) {
	if err := load(); err != nil {
		return CodeEntry{}, false
	}
	var m map[string]CodeEntry
	switch domain {
	case DomainLexer:
		m = reg.Lexer
	case DomainParser:
		m = reg.Parser
	default:
		return CodeEntry{}, false
	}
	ce, ok := m[key]
	return ce, ok
}
