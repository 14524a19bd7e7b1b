package schema

import "sort"

// ResolveRelationships derives the Parents set of every descriptor
// from every other descriptor's Children. Children referencing
// elements that are not part of the set are skipped; cross-schema
// references are expected and resolved by the merge step instead.
// Running twice over the same set is a no-op.
func ResolveRelationships(elements map[string]*Element) {
	for name, element := range elements {
		for _, childName := range element.Children {
			child, ok := elements[childName]
			if !ok {
				continue
			}
			if !containsString(child.Parents, name) {
				child.Parents = append(child.Parents, name)
			}
		}
	}

	for _, element := range elements {
		sort.Strings(element.Parents)
	}
}

func containsString(items []string, item string) bool {
	for _, i := range items {
		if i == item {
			return true
		}
	}
	return false
}
