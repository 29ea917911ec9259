package solve

import (
	"fmt"
	"strings"

	"go.xesthora.dev/xesthora/internal/ilp"
)

// Infeasibility is one nonzero-slack finding from the §4.5 scan: the
// constraint family, the index tuple (recovered from the constraint name),
// the signed slack, and the human-readable expression.
type Infeasibility struct {
	Constraint string
	Index      string
	Slack      float64
	Expression string
}

// slackFamilies lists the constraint-name prefixes of the elastic families.
// Only C1, C4, and C5 carry slacks (§4.4); C2, C3, C6, C7 are hard and
// never appear here.
var slackFamilies = []string{"C1", "C4", "C5"}

// EnumerateInfeasibilities walks every elastic constraint family and
// reports each index whose slack value is nonzero, per §4.5/§7.
func EnumerateInfeasibilities(model *ilp.Model, result Result) []Infeasibility {
	var out []Infeasibility
	for _, c := range model.Constraints {
		family := familyOf(c.Name)
		if !isElastic(family) {
			continue
		}
		pos, neg := slackTerms(c.Terms)
		var slack float64
		switch family {
		case "C1":
			// C1: Σx = 1 + sp1 - sn1 → slack = sp1 - sn1.
			slack = result.Value(pos) - result.Value(neg)
		case "C4":
			// C4: Σy ≤ max + sp2 → slack = sp2 (deficiency is never negative here).
			slack = result.Value(pos)
		case "C5":
			// C5: Σy ≥ min - sn2 → slack reported as -sn2 (a shortfall).
			slack = -result.Value(neg)
		}
		if slack == 0 {
			continue
		}
		out = append(out, Infeasibility{
			Constraint: family,
			Index:      indexOf(c.Name),
			Slack:      slack,
			Expression: expressionOf(c),
		})
	}
	return out
}

func isElastic(family string) bool {
	for _, f := range slackFamilies {
		if f == family {
			return true
		}
	}
	return false
}

func familyOf(constraintName string) string {
	if i := strings.Index(constraintName, "#"); i >= 0 {
		return constraintName[:i]
	}
	return constraintName
}

func indexOf(constraintName string) string {
	if i := strings.Index(constraintName, "#"); i >= 0 {
		return constraintName[i+1:]
	}
	return ""
}

// slackTerms extracts the (positive-slack, negative-slack) variable names
// from a constraint's term list, identified by their sp*/sn* name prefix.
func slackTerms(terms []ilp.Term) (pos, neg string) {
	for _, t := range terms {
		switch {
		case strings.HasPrefix(t.Var, "sp1#"), strings.HasPrefix(t.Var, "sp2#"):
			pos = t.Var
		case strings.HasPrefix(t.Var, "sn1#"), strings.HasPrefix(t.Var, "sn2#"):
			neg = t.Var
		}
	}
	return pos, neg
}

func expressionOf(c ilp.Constraint) string {
	var sb strings.Builder
	for i, t := range c.Terms {
		if i > 0 {
			sb.WriteString(" + ")
		}
		fmt.Fprintf(&sb, "%g*%s", t.Coef, t.Var)
	}
	sb.WriteString(" ")
	sb.WriteString(c.Sense.String())
	sb.WriteString(" ")
	fmt.Fprintf(&sb, "%g", c.RHS)
	return sb.String()
}
