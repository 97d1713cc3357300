package nested

import (
	"github.com/vidiask/swift/env"
	"github.com/vidiask/swift/model"
)

// editDistance computes the Levenshtein distance between a and b via the
// same full-matrix alignment DP as weighted sequence alignment, with unit
// insert/delete/substitute cost instead of a magnitude difference.
func editDistance(a, b string) int {
	n, m := len(a), len(b)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}
	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = j
	}
	for i := 1; i <= n; i++ {
		curr[0] = i
		for j := 1; j <= m; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			curr[j] = min3(del, ins, sub)
		}
		prev, curr = curr, prev
	}
	return prev[m]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// maxTypoDistance implements the threshold: edit-distance <=
// max(1, ceil(len(name)/3)).
func maxTypoDistance(name string) int {
	n := len(name)
	ceil := (n + 2) / 3
	if ceil < 1 {
		return 1
	}
	return ceil
}

// CorrectTypo attempts to rename an unresolved nested PA to the closest
// associated-type name among the protocols its parent's class conforms
// to. It renames and equates the PA to its replacement only when
// exactly one candidate achieves the minimal distance within the
// threshold; ambiguous or out-of-threshold cases are left unresolved.
func CorrectTypo(ctx *env.Context, eq Equator, id model.PAID) (corrected bool) {
	node := ctx.Arena.Get(id)
	if node.IsRoot() || !node.IsUnresolvedNested() {
		return false
	}
	rep := ctx.Arena.Representative(node.Parent())
	class := ctx.Arena.EquivalenceClass(rep)

	name := node.NestedName()
	threshold := maxTypoDistance(name)

	var bestCandidates []model.AssocTypeDecl
	bestDist := threshold + 1
	for _, proto := range class.Protocols() {
		for _, at := range proto.AssociatedTypes() {
			d := editDistance(name, at.Name())
			if d > threshold {
				continue
			}
			if d < bestDist {
				bestDist = d
				bestCandidates = []model.AssocTypeDecl{at}
			} else if d == bestDist {
				bestCandidates = append(bestCandidates, at)
			}
		}
	}
	if len(bestCandidates) != 1 {
		return false
	}

	best := bestCandidates[0]
	ctx.Arena.Rename(id, best.Name())
	upgradeToAssoc(ctx, id, best)
	replacement, _ := GetNestedTypeForAssoc(ctx, eq, rep, best, AddIfMissing)
	if replacement != id {
		eq.AddSameType(id, replacement, ctx.Sources.ForNestedTypeNameMatch(rep))
	}
	return true
}
