package server

import "sync"

// notifier broadcasts dictionary swaps to subscribed listeners.
// Listeners receive the dictionary info after each swap.
type notifier struct {
	mu        sync.RWMutex
	listeners map[chan DictionaryInfo]struct{}
}

func newNotifier() *notifier {
	return &notifier{
		listeners: make(map[chan DictionaryInfo]struct{}),
	}
}

// subscribe returns a channel that receives an update after every swap.
// The caller must call unsubscribe when done.
func (n *notifier) subscribe() chan DictionaryInfo {
	ch := make(chan DictionaryInfo, 1)
	n.mu.Lock()
	n.listeners[ch] = struct{}{}
	n.mu.Unlock()
	return ch
}

// unsubscribe removes a listener channel and closes it.
func (n *notifier) unsubscribe(ch chan DictionaryInfo) {
	n.mu.Lock()
	delete(n.listeners, ch)
	n.mu.Unlock()
	close(ch)
}

// broadcast sends info to all listeners without blocking. A pending
// update that has not been read yet is replaced, so slow listeners always
// see the latest state.
func (n *notifier) broadcast(info DictionaryInfo) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for ch := range n.listeners {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- info:
		default:
		}
	}
}

func (n *notifier) len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.listeners)
}
