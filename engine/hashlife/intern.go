// Copyright (C) 2026 The rust-game-of-life Authors.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package hashlife

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/dchest/siphash"
)

// hashTable is the interning table ("hashes" in spec terms): a
// mapping from a freshly constructed node value to the canonical
// shared instance. Nodes are bucketed by a SipHash of their variant,
// level and child identities, the same bucketing discipline
// ion/zion/hash.go uses for symbols, with an explicit equality check
// to resolve collisions within a bucket.
type hashTable struct {
	k0, k1  uint64
	buckets map[uint64][]*node
}

func newHashTable() *hashTable {
	return &hashTable{
		// Fixed keys: the table only needs to distinguish distinct
		// node shapes within a single engine's lifetime, not resist
		// adversarial input.
		k0:      0x5e11ed5e11ed5e11,
		k1:      0xc0ffee1234567890,
		buckets: make(map[uint64][]*node),
	}
}

func (t *hashTable) hashOf(n *node) uint64 {
	var buf [1 + 8 + 4*8]byte
	if n.isLeaf() {
		buf[0] = 0
		if n.alive {
			buf[0] = 1
		}
		binary.LittleEndian.PutUint64(buf[1:], uint64(n.level))
		return siphash.Hash(t.k0, t.k1, buf[:9])
	}
	buf[0] = 2
	binary.LittleEndian.PutUint64(buf[1:9], uint64(n.level))
	binary.LittleEndian.PutUint64(buf[9:17], uint64(uintptr(unsafe.Pointer(n.cne))))
	binary.LittleEndian.PutUint64(buf[17:25], uint64(uintptr(unsafe.Pointer(n.cnw))))
	binary.LittleEndian.PutUint64(buf[25:33], uint64(uintptr(unsafe.Pointer(n.csw))))
	binary.LittleEndian.PutUint64(buf[33:41], uint64(uintptr(unsafe.Pointer(n.cse))))
	return siphash.Hash(t.k0, t.k1, buf[:41])
}

// intern returns the canonical shared instance equal to n, inserting
// n if no equal value exists yet. Every persistent node reference in
// the engine passes through here.
func (t *hashTable) intern(n *node) *node {
	h := t.hashOf(n)
	for _, cand := range t.buckets[h] {
		if cand.equalValue(n) {
			return cand
		}
	}
	t.buckets[h] = append(t.buckets[h], n)
	return n
}

func (t *hashTable) newLeaf(alive bool) *node {
	return t.intern(&node{level: 0, leaf: true, alive: alive})
}

// withComponents builds a level L+1 split node from four level-L
// children. Fatal if the levels disagree.
func (t *hashTable) withComponents(ne, nw, sw, se *node) *node {
	if ne.level != nw.level || nw.level != sw.level || sw.level != se.level {
		panic(fmt.Sprintf("hashlife: with_components level mismatch: ne=%d nw=%d sw=%d se=%d",
			ne.level, nw.level, sw.level, se.level))
	}
	return t.intern(&node{level: ne.level + 1, cne: ne, cnw: nw, csw: sw, cse: se})
}

// deadCache is the canonical-dead cache: deadCache[i] is the interned
// fully-dead node of level i, extended on demand.
type deadCache struct {
	table *hashTable
	cache []*node
}

func newDeadCache(t *hashTable) *deadCache {
	return &deadCache{table: t, cache: []*node{t.newLeaf(false)}}
}

// at returns the canonical dead node of the given level. Fatal for
// negative levels.
func (d *deadCache) at(level int) *node {
	if level < 0 {
		panic(fmt.Sprintf("hashlife: canonical_dead with negative level %d", level))
	}
	for len(d.cache) <= level {
		prev := d.cache[len(d.cache)-1]
		d.cache = append(d.cache, d.table.withComponents(prev, prev, prev, prev))
	}
	return d.cache[level]
}
