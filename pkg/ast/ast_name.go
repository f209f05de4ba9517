package ast

import (
	"github.com/wundergraph/graphql-directives/pkg/lexer/runes"
)

// NamePattern is the grammar every GraphQL Name has to match.
const NamePattern = "/^[_a-zA-Z][_a-zA-Z0-9]*$/"

// IsValidName reports whether name matches NamePattern.
func IsValidName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 {
			if !runes.IsNameStart(r) {
				return false
			}
			continue
		}
		if !runes.IsNameContinue(r) {
			return false
		}
	}
	return true
}
