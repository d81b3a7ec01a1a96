package hashtable

// entry is a key-value pair owned by exactly one chain
type entry[K comparable, V any] struct {
	key   K
	value V
	next  *entry[K, V]
}

// chain holds the entries of one bucket in insertion order
type chain[K comparable, V any] struct {
	head *entry[K, V]
	len  int
}

// find returns the entry holding key, or nil
func (c *chain[K, V]) find(key K) *entry[K, V] {
	for e := c.head; e != nil; e = e.next {
		if e.key == key {
			return e
		}
	}
	return nil
}

// put updates the entry holding key in place, or appends a new entry at the
// tail. It reports whether a new entry was added.
func (c *chain[K, V]) put(key K, value V) bool {
	link := &c.head
	for *link != nil {
		if (*link).key == key {
			(*link).value = value
			return false
		}
		link = &(*link).next
	}
	*link = &entry[K, V]{key: key, value: value}
	c.len++
	return true
}

// remove unlinks the entry holding key. Walking the links rather than the
// entries makes the head, a sole entry and an interior entry the same case.
func (c *chain[K, V]) remove(key K) bool {
	for link := &c.head; *link != nil; link = &(*link).next {
		e := *link
		if e.key != key {
			continue
		}
		*link = e.next
		e.next = nil
		c.len--
		return true
	}
	return false
}

// each calls yield for every entry in order and stops early when yield returns false
func (c *chain[K, V]) each(yield func(K, V) bool) bool {
	for e := c.head; e != nil; e = e.next {
		if !yield(e.key, e.value) {
			return false
		}
	}
	return true
}

func (c *chain[K, V]) reset() {
	c.head = nil
	c.len = 0
}
