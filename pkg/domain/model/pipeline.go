package model

import "sort"

// VisibleRepos drops archived repositories and orders the rest by most
// recent push, descending. Repositories without a pushed_at timestamp sink
// to the tail and keep their input order there. The input slice is not
// modified.
func VisibleRepos(raw []*Repository) []*Repository {
	visible := make([]*Repository, 0, len(raw))
	for _, repo := range raw {
		if repo.Archived {
			continue
		}
		visible = append(visible, repo)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		a, b := visible[i].PushedAt, visible[j].PushedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})

	return visible
}
