package jdom

import "sort"

// value is a single node in a document's arena.
// Leaf payloads occupy b/i/f/s according to kind; containers use children.
// Do not store pointers to a value across arena growth.
type value struct {
	kind     Kind
	b        bool
	i        int64
	f        float64
	s        string
	children []child
}

// child links a container value to a child's arena id.
// List children have empty keys and keep append order.
// Object children are kept sorted by key at all times.
type child struct {
	key string
	id  uint
}

func (v *value) search(key string) int {
	return sort.Search(len(v.children), func(i int) bool {
		return v.children[i].key >= key
	})
}

// get finds an object child's id by key.
func (v *value) get(key string) (uint, bool) {
	if i := v.search(key); i < len(v.children) && v.children[i].key == key {
		return v.children[i].id, true
	}
	return 0, false
}

// put links id under key, keeping children sorted.
// Re-adding a key overwrites the previous child in place.
func (v *value) put(key string, id uint) {
	i := v.search(key)
	if i < len(v.children) && v.children[i].key == key {
		v.children[i].id = id
		return
	}
	v.children = append(v.children, child{})
	copy(v.children[i+1:], v.children[i:])
	v.children[i] = child{key: key, id: id}
}

// reset rewrites a value as a leaf of kind k, releasing any children.
func (v *value) reset(k Kind) {
	*v = value{kind: k, children: v.children[:0]}
}
