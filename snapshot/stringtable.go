package snapshot

import "sort"

// stringTable assigns a stable int32 id to every distinct string
// referenced by a graph's tag keys and values, in sorted order so
// that encoding the same graph twice produces the same table.
type stringTable struct {
	ids     map[string]int32
	ordered []string
}

func newStringTable(strs map[string]struct{}) *stringTable {
	ordered := make([]string, 0, len(strs))
	for s := range strs {
		ordered = append(ordered, s)
	}
	sort.Strings(ordered)

	ids := make(map[string]int32, len(ordered))
	for i, s := range ordered {
		ids[s] = int32(i)
	}

	return &stringTable{ids: ids, ordered: ordered}
}

// id returns the interned id for s. Callers must only request strings
// that were present in the set used to build the table.
func (t *stringTable) id(s string) int32 {
	return t.ids[s]
}
