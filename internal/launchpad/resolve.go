package launchpad

import (
	"errors"
	"strings"
)

// ErrNotFound reports that no project matched a route token.
var ErrNotFound = errors.New("launch not found")

// Predicate reports whether a project answers to a route token.
type Predicate func(project Project, token string) bool

// MatchSlug matches the project slug exactly.
func MatchSlug(project Project, token string) bool {
	return project.Slug != "" && project.Slug == token
}

// MatchSymbol matches the short symbol ignoring case.
func MatchSymbol(project Project, token string) bool {
	return project.ShortSymbol != "" && strings.EqualFold(project.ShortSymbol, token)
}

// MatchID matches the string form of the project id.
func MatchID(project Project, token string) bool {
	return project.ID != "" && project.ID == token
}

// DefaultPredicates is the identity check order used by the detail view.
var DefaultPredicates = []Predicate{MatchSlug, MatchSymbol, MatchID}

// ResolveProject returns the first project, in collection order, that
// satisfies any default predicate.
func ResolveProject(projects []Project, token string) (Project, error) {
	return ResolveProjectWith(projects, token, DefaultPredicates...)
}

// ResolveProjectWith is ResolveProject over an explicit predicate list.
// Collection order wins over predicate order.
func ResolveProjectWith(projects []Project, token string, predicates ...Predicate) (Project, error) {
	if token == "" {
		return Project{}, ErrNotFound
	}
	for _, project := range projects {
		for _, matches := range predicates {
			if matches == nil {
				continue
			}
			if matches(project, token) {
				return project, nil
			}
		}
	}
	return Project{}, ErrNotFound
}
