package planner

import (
	"slices"

	"woo-ah-sik/internal/stage"
)

// maxGroupSpan is the largest stage-order distance from a group's base stage
// that still shares one plan.
const maxGroupSpan = 2

// ChildInfo is the view of one child used while grouping a request.
type ChildInfo struct {
	Index  int      `json:"index" yaml:"index"`
	Label  string   `json:"label" yaml:"label"`
	Months int      `json:"months" yaml:"months"`
	Stage  stage.ID `json:"stage" yaml:"stage"`
}

// StageGroup is a set of children close enough in development to share one
// generated plan. Base is the lowest stage among them.
type StageGroup struct {
	Children []ChildInfo `json:"children" yaml:"children"`
	Base     stage.ID    `json:"base_stage" yaml:"base_stage"`
}

// Stages returns the distinct stages of the group in ascending order.
func (g StageGroup) Stages() []stage.ID {
	var ids []stage.ID
	for _, c := range g.Children {
		if !slices.Contains(ids, c.Stage) {
			ids = append(ids, c.Stage)
		}
	}
	slices.Sort(ids)
	return ids
}

// GroupChildren partitions children into bands of compatible stages. Children
// are sorted by stage order (ties keep input order) and scanned greedily: a
// child joins the current group while its stage is within maxGroupSpan of the
// group's base, otherwise it opens a new group.
func GroupChildren(children []ChildInfo) []StageGroup {
	if len(children) == 0 {
		return []StageGroup{}
	}

	sorted := slices.Clone(children)
	slices.SortStableFunc(sorted, func(a, b ChildInfo) int {
		return a.Stage.Order() - b.Stage.Order()
	})

	var groups []StageGroup
	current := StageGroup{Children: []ChildInfo{sorted[0]}, Base: sorted[0].Stage}
	for _, child := range sorted[1:] {
		if child.Stage.Order()-current.Base.Order() <= maxGroupSpan {
			current.Children = append(current.Children, child)
			continue
		}
		groups = append(groups, current)
		current = StageGroup{Children: []ChildInfo{child}, Base: child.Stage}
	}
	return append(groups, current)
}
