package list

// slot is the position of a node in the arena of a list. The zero slot never
// holds a node and stands for the absent neighbor at either end of the list.
type slot uint32

// xor combines two slots. Combining a link with one of the neighbors it was
// built from gives back the other neighbor, since (a ^ b) ^ a == b.
func (s slot) xor(t slot) slot { return s ^ t }

// node values carry a single link field: the xor of the slots of both
// neighbors. Nodes at the ends of the list have one absent neighbor, so their
// link is the slot of the node on the other side. A node alone in the list has
// a zero link.
//
// Released nodes reuse the link field to chain the free list.
type node[T any] struct {
	value T
	link  slot
}

// step decodes the node at s when arriving from the node at from, returning
// the slot of the node on the other side.
func (list *List[T]) step(s, from slot) slot {
	return list.nodes[s].link.xor(from)
}

// relink replaces the neighbor prev with next in the link of the node at s.
func (list *List[T]) relink(s, prev, next slot) {
	n := &list.nodes[s]
	n.link = n.link.xor(prev).xor(next)
}

func (list *List[T]) alloc(value T) slot {
	if len(list.nodes) == 0 {
		list.nodes = make([]node[T], 1, list.capacity+1)
	}
	if s := list.free; s != 0 {
		n := &list.nodes[s]
		list.free = n.link
		*n = node[T]{value: value}
		return s
	}
	if uint64(len(list.nodes)) > uint64(maxSlot) {
		panic(errTooManyNodes)
	}
	list.nodes = append(list.nodes, node[T]{value: value})
	return slot(len(list.nodes) - 1)
}

// release returns the value held by the node at s and puts the slot back on
// the free list. The value is cleared so the slot does not retain references.
func (list *List[T]) release(s slot) T {
	n := &list.nodes[s]
	value := n.value
	*n = node[T]{link: list.free}
	list.free = s
	return value
}

const maxSlot = ^slot(0)
