package cache

import "container/list"

// recencyList maintains a single total order over live keys.
// Front = most recently used, Back = least recently used. Keys that have
// never been read keep their insertion position, so recency ties break by
// insertion order (earlier insertion evicted first).
type recencyList struct {
	order *list.List
	index map[string]*list.Element
}

func newRecencyList() *recencyList {
	return &recencyList{
		order: list.New(),
		index: make(map[string]*list.Element),
	}
}

// touch moves key to the MRU position, inserting it if absent.
func (r *recencyList) touch(key string) {
	if el, ok := r.index[key]; ok {
		r.order.MoveToFront(el)
		return
	}
	r.index[key] = r.order.PushFront(key)
}

// remove drops key from the order. Unknown keys are ignored.
func (r *recencyList) remove(key string) {
	if el, ok := r.index[key]; ok {
		r.order.Remove(el)
		delete(r.index, key)
	}
}

// lru returns the least recently used key, if any.
func (r *recencyList) lru() (string, bool) {
	el := r.order.Back()
	if el == nil {
		return "", false
	}
	return el.Value.(string), true
}

func (r *recencyList) len() int {
	return r.order.Len()
}

func (r *recencyList) clear() {
	r.order.Init()
	r.index = make(map[string]*list.Element)
}
