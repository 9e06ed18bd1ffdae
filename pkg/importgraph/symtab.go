package importgraph

// symbolTable provides bidirectional mapping between module names and dense
// integer IDs. Not safe for concurrent use; the graph owning it is documented
// as single-threaded.
type symbolTable struct {
	strToID map[string]int
	idToStr []string
}

func newSymbolTable() *symbolTable {
	return &symbolTable{
		strToID: make(map[string]int),
		idToStr: make([]string, 0),
	}
}

// intern returns the unique ID for the given name, assigning a new ID if the
// name has not been seen before.
func (table *symbolTable) intern(name string) int {
	if id, exists := table.strToID[name]; exists {
		return id
	}

	id := len(table.idToStr)
	table.idToStr = append(table.idToStr, name)
	table.strToID[name] = id

	return id
}

// lookup returns the ID for the given name without interning it.
func (table *symbolTable) lookup(name string) (int, bool) {
	id, exists := table.strToID[name]

	return id, exists
}

// resolve returns the name associated with the given ID, or an empty string
// if the ID is invalid.
func (table *symbolTable) resolve(id int) string {
	if id < 0 || id >= len(table.idToStr) {
		return ""
	}

	return table.idToStr[id]
}

func (table *symbolTable) len() int {
	return len(table.idToStr)
}

// copy returns an independent deep copy of the table.
func (table *symbolTable) copy() *symbolTable {
	clone := &symbolTable{
		strToID: make(map[string]int, len(table.strToID)),
		idToStr: make([]string, len(table.idToStr)),
	}

	for name, id := range table.strToID {
		clone.strToID[name] = id
	}

	copy(clone.idToStr, table.idToStr)

	return clone
}
