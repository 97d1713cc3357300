package finalize

import (
	"sort"

	"github.com/vidiask/swift/diag"
	"github.com/vidiask/swift/env"
	"github.com/vidiask/swift/model"
	"github.com/vidiask/swift/pa"
	"github.com/vidiask/swift/source"
)

// computeDerivedComponents partitions each class's members into connected
// components of its derived same-type edges (BFS flood-fill, grounded on
// gridgraph.ConnectedComponents), anchors each component at its
// canonically-least member, and then classifies every non-derived edge as
// either redundant (both endpoints already in one component) or a
// spanning-tree candidate between components. Candidates are thinned to a
// minimum spanning forest over components via union-find (grounded on
// prim_kruskal.Kruskal's disjoint-set), and every edge that union-find
// rejects as already-connected is reported redundant. The surviving
// per-class component list is stored via class.SetComponents for canon to
// walk during enumeration.
func computeDerivedComponents(ctx *env.Context) {
	for _, rep := range ctx.Arena.Representatives() {
		class := ctx.Arena.EquivalenceClass(rep)
		members := class.Members()
		if len(members) <= 1 {
			continue
		}

		adjacency := make(map[model.PAID][]model.PAID, len(members))
		for _, m := range members {
			adjacency[m] = nil
		}
		var nonDerived []pa.SameTypeConstraint
		for _, edge := range class.AllSameTypeEdges() {
			if edge.Source != nil && edge.Source.IsDerived() {
				adjacency[edge.Left] = append(adjacency[edge.Left], edge.Right)
				adjacency[edge.Right] = append(adjacency[edge.Right], edge.Left)
			} else {
				nonDerived = append(nonDerived, edge)
			}
		}

		var groups [][]model.PAID
		seen := make(map[model.PAID]bool, len(members))
		for _, start := range members {
			if seen[start] {
				continue
			}
			queue := []model.PAID{start}
			seen[start] = true
			var group []model.PAID
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				group = append(group, u)
				for _, v := range adjacency[u] {
					if !seen[v] {
						seen[v] = true
						queue = append(queue, v)
					}
				}
			}
			groups = append(groups, group)
		}

		anchorOf := func(group []model.PAID) model.PAID {
			anchor := group[0]
			for _, m := range group[1:] {
				if ctx.Arena.Less(m, anchor) {
					anchor = m
				}
			}
			return anchor
		}

		_, concreteSrc, hasConcrete := class.ConcreteType()

		comps := make([]pa.DerivedComponent, len(groups))
		for i, group := range groups {
			var concreteFrom *source.Source
			if hasConcrete {
				concreteFrom = concreteSrc
			}
			comps[i] = pa.DerivedComponent{Anchor: anchorOf(group), ConcreteFrom: concreteFrom}
		}

		// Order components by their anchor's canonical order, so the
		// class's representative (already canonically-least over the
		// whole class) always lands in comps[0], and inter-component
		// chaining sorts deterministically by component index.
		order := make([]int, len(groups))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(i, j int) bool {
			return ctx.Arena.Less(comps[order[i]].Anchor, comps[order[j]].Anchor)
		})
		sortedComps := make([]pa.DerivedComponent, len(comps))
		sortedGroups := make([][]model.PAID, len(groups))
		for newIdx, oldIdx := range order {
			sortedComps[newIdx] = comps[oldIdx]
			sortedGroups[newIdx] = groups[oldIdx]
		}
		comps, groups = sortedComps, sortedGroups

		componentOf := make(map[model.PAID]int, len(members))
		for idx, group := range groups {
			for _, m := range group {
				componentOf[m] = idx
			}
		}

		if len(comps) <= 1 {
			class.SetComponents(comps)
			continue
		}

		var candidates []pa.SameTypeConstraint
		for _, edge := range nonDerived {
			if componentOf[edge.Left] == componentOf[edge.Right] {
				emit(ctx, diag.SameTypeRedundancyHere, edge.Source, edge.Left, edge.Right)
				continue
			}
			candidates = append(candidates, edge)
		}

		sort.SliceStable(candidates, func(i, j int) bool {
			ci, cj := candidates[i], candidates[j]
			ciFrom, ciTo := componentOf[ci.Left], componentOf[ci.Right]
			cjFrom, cjTo := componentOf[cj.Left], componentOf[cj.Right]
			if ciFrom != cjFrom {
				return ciFrom < cjFrom
			}
			if ciTo != cjTo {
				return ciTo < cjTo
			}
			iInferred, jInferred := ci.Source.IsInferred(), cj.Source.IsInferred()
			if iInferred != jInferred {
				return !iInferred && jInferred
			}
			return ci.Source.Less(cj.Source)
		})

		// Union-find minimum spanning forest over component indices,
		// grounded on prim_kruskal.Kruskal's disjoint-set: every
		// candidate that would connect two already-connected components
		// is redundant rather than a spanning-tree edge.
		parent := make([]int, len(comps))
		for i := range parent {
			parent[i] = i
		}
		var find func(int) int
		find = func(x int) int {
			for parent[x] != x {
				parent[x] = parent[parent[x]]
				x = parent[x]
			}
			return x
		}

		seenPair := make(map[[2]int]bool, len(candidates))
		for _, edge := range candidates {
			from, to := componentOf[edge.Left], componentOf[edge.Right]
			key := [2]int{from, to}
			if from > to {
				key = [2]int{to, from}
			}
			if seenPair[key] {
				emit(ctx, diag.SameTypeRedundancyHere, edge.Source, edge.Left, edge.Right)
				continue
			}
			seenPair[key] = true

			rf, rt := find(from), find(to)
			if rf == rt {
				emit(ctx, diag.SameTypeRedundancyHere, edge.Source, edge.Left, edge.Right)
				continue
			}
			parent[rf] = rt
		}

		class.SetComponents(comps)
	}
}
