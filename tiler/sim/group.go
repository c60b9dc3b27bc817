package sim

import (
	"github.com/tilekit/tilekit/tiler"
)

// groupKey identifies one (process, group id) context. tiler.Process values
// must be comparable.
type groupKey struct {
	pid tiler.Process
	gid uint32
}

// group is the simulator's tiler.Group: a refcounted context owning the
// permanent reservation list for one (process, group id) pair.
type group struct {
	key      groupKey
	refs     int
	reserved tiler.List
}

// Reserved returns the group's permanent reservation list.
func (g *group) Reserved() *tiler.List {
	return &g.reserved
}

// GetGroup returns the context for (pid, gid), creating it on first use.
func (c *Container) GetGroup(pid tiler.Process, gid uint32) tiler.Group {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := groupKey{pid: pid, gid: gid}
	grp, ok := c.groups[key]
	if !ok {
		grp = &group{key: key}
		c.groups[key] = grp
	}
	grp.refs++
	return grp
}

// PutGroup drops one reference. A context with no references and no
// reservations left is discarded; reservations keep a context alive.
func (c *Container) PutGroup(g tiler.Group) {
	grp, ok := g.(*group)
	if !ok {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	grp.refs--
	if grp.refs <= 0 && grp.reserved.Empty() {
		delete(c.groups, grp.key)
	}
}
