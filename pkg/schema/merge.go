package schema

import "sort"

// Merge combines a freshly extracted descriptor with a previously
// persisted one. Structural facts (attribute type, required flag,
// default, children, parents) follow the extraction; prose written by
// a human is never overwritten, and nothing present only in the
// existing descriptor is dropped. Neither input is mutated.
//
// Known limitation: a hand-edited structural fact, such as manually
// marking an attribute required, is replaced by schema truth on the
// next run.
func Merge(existing Element, extracted Element) Element {
	merged := existing

	if merged.Description == "" {
		merged.Description = extracted.Description
	}
	if merged.Documentation == "" {
		merged.Documentation = extracted.Documentation
	}
	if merged.Namespace == "" {
		merged.Namespace = extracted.Namespace
	}
	if merged.Since == "" {
		merged.Since = extracted.Since
	}

	merged.Attributes = make(map[string]Attribute, len(existing.Attributes))
	for name, attr := range existing.Attributes {
		merged.Attributes[name] = attr
	}
	for name, extractedAttr := range extracted.Attributes {
		existingAttr, ok := merged.Attributes[name]
		if !ok {
			merged.Attributes[name] = extractedAttr
			continue
		}
		updated := extractedAttr
		if existingAttr.Description != "" {
			updated.Description = existingAttr.Description
		}
		merged.Attributes[name] = updated
	}

	merged.Children = unionSorted(existing.Children, extracted.Children)
	merged.Parents = unionSorted(existing.Parents, extracted.Parents)

	return merged
}

func unionSorted(a []string, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	union := make([]string, 0, len(a)+len(b))
	for _, items := range [][]string{a, b} {
		for _, item := range items {
			if !seen[item] {
				seen[item] = true
				union = append(union, item)
			}
		}
	}
	sort.Strings(union)
	return union
}
