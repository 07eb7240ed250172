// Package patch rewrites vendored source files from a declarative rule
// table. Rules are plain pattern/replacement data so release-specific
// fixes can be added without touching engine logic.
package patch

import "regexp"

// Rule is a single rewrite applied to a file's full text via global
// regular-expression substitution. Exactly one of Replacement and Compute
// is set: Replacement is a template expanded with ${n} group references,
// Compute derives the replacement from each match's capture groups.
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string
	Compute     func(groups []string) string
}

// Sub returns a literal-replacement rule. The replacement may reference
// capture groups as ${n}.
func Sub(pattern, replacement string) Rule {
	return Rule{
		Pattern:     regexp.MustCompile(pattern),
		Replacement: replacement,
	}
}

// SubFunc returns a computed-replacement rule. The compute function
// receives the capture groups of each match; groups[0] is the full match.
func SubFunc(pattern string, compute func(groups []string) string) Rule {
	return Rule{
		Pattern: regexp.MustCompile(pattern),
		Compute: compute,
	}
}

// Apply runs the rule against text, returning the rewritten text and the
// number of matches replaced. Zero matches returns the text unchanged.
func (r Rule) Apply(text string) (string, int) {
	count := len(r.Pattern.FindAllStringIndex(text, -1))
	if count == 0 {
		return text, 0
	}

	if r.Compute != nil {
		out := r.Pattern.ReplaceAllStringFunc(text, func(match string) string {
			return r.Compute(r.Pattern.FindStringSubmatch(match))
		})
		return out, count
	}

	return r.Pattern.ReplaceAllString(text, r.Replacement), count
}

// FileRuleSet is the ordered rewrite list for one target file, with an
// optional line swap applied after the rules. Rule sets are static data;
// they are never mutated at runtime.
type FileRuleSet struct {
	// Path is the target file, slash-separated relative to the project root.
	Path string

	// Rules are applied in order. Later rules may depend on text inserted
	// by earlier rules in the same file.
	Rules []Rule

	// Swap, when non-nil, reorders two lines after all rules have run.
	Swap *LineSwap
}
