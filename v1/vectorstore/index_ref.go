package vectorstore

import "github.com/Aleph-Alpha/vectorstore/v1/vectordb"

// IndexRef selects the index a Store binds to: either a name that is looked
// up and created on demand, or an already constructed handle.
type IndexRef interface {
	isIndexRef()
}

type byName struct {
	name string
}

type byHandle struct {
	index vectordb.Index
}

func (byName) isIndexRef()   {}
func (byHandle) isIndexRef() {}

// ByName refers to an index by name. The index is created with the store's
// dimension, metric and placement if it does not exist.
func ByName(name string) IndexRef {
	return byName{name: name}
}

// ByHandle binds the store directly to idx, skipping the existence check
// and creation.
func ByHandle(idx vectordb.Index) IndexRef {
	return byHandle{index: idx}
}
