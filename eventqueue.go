package voronoi

import (
	"github.com/google/btree"
)

// queue is the merged site-event/vertex-event priority queue. It is backed by two
// [btree.BTreeG] trees (one per event kind), grounded on the same google/btree-based event
// queue this module's sweep machinery was adapted from: a single comparator closure per tree,
// ReplaceOrInsert to add, DeleteMin/Delete to remove.
type queue struct {
	sites    *btree.BTreeG[*siteEvent]
	vertices *btree.BTreeG[*vertexEvent]
	nextSeq  uint64
}

func newQueue(sites []*Site) *queue {
	q := &queue{
		sites:    btree.NewG[*siteEvent](32, siteEventLess),
		vertices: btree.NewG[*vertexEvent](32, vertexEventLess),
	}
	for _, s := range sites {
		q.sites.ReplaceOrInsert(&siteEvent{site: s})
	}
	return q
}

func (q *queue) empty() bool {
	return q.sites.Len() == 0 && q.vertices.Len() == 0
}

// next pops the single highest-priority event, whichever kind it is. At most one of the two
// return values is non-nil; both are nil when the queue is empty.
func (q *queue) next() (*siteEvent, *vertexEvent) {
	sMin, sok := q.sites.Min()
	vMin, vok := q.vertices.Min()
	switch {
	case !sok && !vok:
		return nil, nil
	case !vok:
		q.sites.DeleteMin()
		return sMin, nil
	case !sok:
		q.vertices.DeleteMin()
		return nil, vMin
	default:
		if priority(sMin.site.P, vMin.point) <= 0 {
			q.sites.DeleteMin()
			return sMin, nil
		}
		q.vertices.DeleteMin()
		return nil, vMin
	}
}

// insertVertexEvent adds ve to the queue, assigning it a fresh sequence number.
func (q *queue) insertVertexEvent(ve *vertexEvent) {
	q.nextSeq++
	ve.seq = q.nextSeq
	q.vertices.ReplaceOrInsert(ve)
}

// removeVertexEvent removes ve from the queue by its exact (point, seq) identity. A no-op if ve
// is nil or already removed.
func (q *queue) removeVertexEvent(ve *vertexEvent) {
	if ve == nil {
		return
	}
	q.vertices.Delete(ve)
}
