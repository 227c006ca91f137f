package css

import (
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/stormlicht/style/interning"
)

// Declaration is one property/value pair out of a rule's declaration
// block, already dispatched to its typed SpecifiedProperty. It carries no
// selector or specificity — selector matching and cascade ordering are
// handled upstream of this package.
type Declaration struct {
	Property  interning.Symbol
	Value     SpecifiedProperty
	Important bool
}

// StyleRule is a flat, ordered list of declarations collected from one
// rule's `{ ... }` body.
type StyleRule struct {
	Declarations []Declaration
}

// CollectDeclarations parses source, the contents of a declaration
// block (the part between `{` and `}`, exclusive), into a StyleRule.
// Declarations whose value fails to parse are dropped and logged as a
// warning rather than aborting the whole rule; their errors are
// aggregated into the returned error so a caller that cares can report
// them without losing the declarations that did parse.
func CollectDeclarations(source string, logger *zap.Logger) (*StyleRule, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	parser := NewCSSParser(source)
	raw := parser.ParseDeclarationList()

	rule := &StyleRule{}
	var errs []error

	for _, rd := range raw {
		name := strings.ToLower(rd.Property)
		sym := interning.Intern(name)

		value, err := ParseDeclarationValue(sym, rd.Value)
		if err != nil {
			var kind ErrorKind
			if pe, ok := err.(*ParseError); ok {
				kind = pe.Kind
			}
			logger.Warn("dropping declaration",
				zap.String("property", name),
				zap.Int("value_tokens", len(rd.Value)),
				zap.String("error_kind", kind.String()),
			)
			errs = append(errs, err)
			continue
		}

		rule.Declarations = append(rule.Declarations, Declaration{
			Property:  sym,
			Value:     value,
			Important: rd.Important,
		})
	}

	return rule, joinErrors(errs)
}

func joinErrors(errs []error) error {
	var combined error
	for _, err := range errs {
		combined = multierr.Append(combined, err)
	}
	return combined
}
