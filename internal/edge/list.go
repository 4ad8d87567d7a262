package edge

// list is a singly linked list of edges backed by a Pool, with a tail
// pointer so append stays O(1).
type list struct {
	pool Pool
	head int32
	tail int32
}

func newList() list { return list{head: nilIdx, tail: nilIdx} }

func (l *list) reset() {
	l.pool.Reset()
	l.head, l.tail = nilIdx, nilIdx
}

// prepend inserts idx at the head. Order within the in-list does not
// matter because normalize_edges sorts it before use.
func (l *list) prepend(idx int32) {
	l.pool.Get(idx).Next = l.head
	l.head = idx
	if l.tail == nilIdx {
		l.tail = idx
	}
}

// append adds idx to the tail, preserving existing order.
func (l *list) append(idx int32) {
	e := l.pool.Get(idx)
	e.Next = nilIdx
	if l.tail == nilIdx {
		l.head, l.tail = idx, idx
		return
	}
	l.pool.Get(l.tail).Next = idx
	l.tail = idx
}

// slice collects every edge currently in the list, in list order.
func (l *list) slice() []int32 {
	var out []int32
	for i := l.head; i != nilIdx; i = l.pool.Get(i).Next {
		out = append(out, i)
	}
	return out
}

// rebuild replaces the list's contents with idxs, in order, without
// touching the pool (used after sorting a copy of the index slice).
func (l *list) rebuild(idxs []int32) {
	l.head, l.tail = nilIdx, nilIdx
	for _, i := range idxs {
		l.append(i)
	}
}

func (l *list) isEmpty() bool { return l.head == nilIdx }
