package dictionary

// node is a rune-keyed trie node. elements is non-nil only on nodes that end
// a dictionary key; known marks keys whose element list is non-empty.
type node struct {
	children map[rune]*node
	elements []string
	known    bool
}

func newNode() *node {
	return &node{}
}

func (n *node) insert(word string, elements []string) {
	cur := n
	for _, r := range word {
		if cur.children == nil {
			cur.children = make(map[rune]*node)
		}
		next, ok := cur.children[r]
		if !ok {
			next = newNode()
			cur.children[r] = next
		}
		cur = next
	}
	cur.elements = elements
	cur.known = len(elements) > 0
}

// LongestPrefix finds the longest known word that starts at text[start].
// It returns the word length in runes and its elements, or 0 and nil when no
// known word starts there. The elements slice must not be modified.
func (d *Dictionary) LongestPrefix(text []rune, start int) (int, []string) {
	if d == nil || d.root == nil || start < 0 || start >= len(text) {
		return 0, nil
	}
	var (
		bestLen      int
		bestElements []string
	)
	cur := d.root
	for i := start; i < len(text); i++ {
		next, ok := cur.children[text[i]]
		if !ok {
			break
		}
		cur = next
		if cur.known {
			bestLen = i - start + 1
			bestElements = cur.elements
		}
	}
	return bestLen, bestElements
}

// WalkPrefixes calls fn for every known word that starts at text[start], in
// increasing length order. Iteration stops when fn returns false.
func (d *Dictionary) WalkPrefixes(text []rune, start int, fn func(length int, elements []string) bool) {
	if d == nil || d.root == nil || start < 0 {
		return
	}
	cur := d.root
	for i := start; i < len(text); i++ {
		next, ok := cur.children[text[i]]
		if !ok {
			return
		}
		cur = next
		if cur.known && !fn(i-start+1, cur.elements) {
			return
		}
	}
}

// HasPrefixAt reports whether any known word starts at text[start].
func (d *Dictionary) HasPrefixAt(text []rune, start int) bool {
	n, _ := d.LongestPrefix(text, start)
	return n > 0
}
