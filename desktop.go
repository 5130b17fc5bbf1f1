package main

// Desktop is one virtual workspace of a monitor: an ordered client
// list (the order is the tiling order) plus the per-desktop layout
// state. current and prevfocus are weak references into the list.
type Desktop struct {
	mode       Mode
	masterSize int
	growth     int
	showPanel  bool

	clients   []*Client
	current   *Client
	prevfocus *Client
}

func (d *Desktop) indexOf(c *Client) int {
	for i, cc := range d.clients {
		if cc == c {
			return i
		}
	}
	return -1
}

func (d *Desktop) contains(c *Client) bool {
	return d.indexOf(c) >= 0
}

// attach inserts the client at the head of the list, or at the tail
// when aside is set.
func (d *Desktop) attach(c *Client, aside bool) {
	if aside || len(d.clients) == 0 {
		d.clients = append(d.clients, c)
		return
	}
	d.clients = append([]*Client{c}, d.clients...)
}

// detach unlinks the client and clears any focus reference to it.
// Deciding who gets focus next is the caller's business.
func (d *Desktop) detach(c *Client) {
	i := d.indexOf(c)
	if i < 0 {
		return
	}
	d.clients = append(d.clients[:i], d.clients[i+1:]...)
	if d.current == c {
		d.current = nil
	}
	if d.prevfocus == c {
		d.prevfocus = nil
	}
}

// prevClient returns the cyclic predecessor of c, or nil if c is not
// in the list or has no other client to cycle to.
func (d *Desktop) prevClient(c *Client) *Client {
	n := len(d.clients)
	if n < 2 {
		return nil
	}
	i := d.indexOf(c)
	if i < 0 {
		return nil
	}
	return d.clients[(i-1+n)%n]
}

// nextClient returns the cyclic successor of c under the same rules.
func (d *Desktop) nextClient(c *Client) *Client {
	n := len(d.clients)
	if n < 2 {
		return nil
	}
	i := d.indexOf(c)
	if i < 0 {
		return nil
	}
	return d.clients[(i+1)%n]
}

// focusClient performs the focus bookkeeping: the outgoing current
// becomes prevfocus, and re-focusing prevfocus swaps the roles, with
// the new prevfocus taken from the list order.
func (d *Desktop) focusClient(c *Client) {
	if c == nil {
		d.current, d.prevfocus = nil, nil
		return
	}
	switch {
	case c == d.prevfocus:
		d.current = c
		d.prevfocus = d.prevClient(c)
	case c != d.current:
		d.prevfocus = d.current
		d.current = c
	}
}

// moveDown swaps the current client with its successor. At the tail
// the client wraps around to the head and the rest of the list shifts,
// preserving relative order:
//
//	[n]->..->[p]->[c]  ==>  [c]->[n]->..->[p]
func (d *Desktop) moveDown() bool {
	n := len(d.clients)
	i := d.indexOf(d.current)
	if i < 0 || n < 2 {
		return false
	}
	if i == n-1 {
		c := d.clients[i]
		copy(d.clients[1:], d.clients[:i])
		d.clients[0] = c
		return true
	}
	d.clients[i], d.clients[i+1] = d.clients[i+1], d.clients[i]
	return true
}

// moveUp is the inverse of moveDown: swap with the predecessor, and at
// the head rotate the client to the tail.
func (d *Desktop) moveUp() bool {
	n := len(d.clients)
	i := d.indexOf(d.current)
	if i < 0 || n < 2 {
		return false
	}
	if i == 0 {
		c := d.clients[0]
		copy(d.clients[:n-1], d.clients[1:])
		d.clients[n-1] = c
		return true
	}
	d.clients[i-1], d.clients[i] = d.clients[i], d.clients[i-1]
	return true
}

// swapMaster moves the current client to the head of the list. If it
// already is the head it swaps with the next client instead. Returns
// the client that ends up as master, or nil if nothing moved.
func (d *Desktop) swapMaster() *Client {
	n := len(d.clients)
	if d.current == nil || n < 2 {
		return nil
	}
	i := d.indexOf(d.current)
	if i < 0 {
		return nil
	}
	if i == 0 {
		d.moveDown()
		return d.clients[0]
	}
	c := d.clients[i]
	copy(d.clients[1:i+1], d.clients[:i])
	d.clients[0] = c
	return c
}

// fallbackFocus picks who gets focus after a client has left the
// desktop: the previous focus, else whoever is still current, else the
// list head. Nil only when the desktop is empty. Call after detach, so
// a reference to the departed client has already been cleared.
func (d *Desktop) fallbackFocus() *Client {
	if d.prevfocus != nil {
		return d.prevfocus
	}
	if d.current != nil {
		return d.current
	}
	if len(d.clients) > 0 {
		return d.clients[0]
	}
	return nil
}

// tileable returns the clients the layout engine should place, in
// list order.
func (d *Desktop) tileable() []*Client {
	var ts []*Client
	for _, c := range d.clients {
		if !c.fft() {
			ts = append(ts, c)
		}
	}
	return ts
}

func (d *Desktop) hasUrgent() bool {
	for _, c := range d.clients {
		if c.urgent {
			return true
		}
	}
	return false
}
