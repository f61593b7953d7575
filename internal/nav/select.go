package nav

import (
	"strings"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

// SelectVersion returns the sections of the version whose key is the
// longest prefix of path. A path equal to a key without its trailing slash
// ("/next" for "/next/") also matches. Matching is a plain string prefix
// test, so a key written without a trailing slash ("/next") also serves
// "/nextgen/intro"; end keys with "/" to scope them to a directory. When
// nothing matches, the DefaultVersion key is used; without one the result
// is ErrNoMatch wrapping a *NoMatchError.
func SelectVersion(path string, versions VersionedNav) ([]Item, error) {
	key, err := matchKey(path, versions.Keys())
	if err != nil {
		return nil, err
	}
	sections, _ := versions.Lookup(key)
	return sections, nil
}

// Select is SelectVersion over resolved trees.
func (r *ResolvedNav) Select(path string) (Tree, error) {
	keys := make([]string, 0, len(r.Versions))
	for _, t := range r.Versions {
		keys = append(keys, t.Key)
	}
	key, err := matchKey(path, keys)
	if err != nil {
		return Tree{}, err
	}
	t, _ := r.Version(key)
	return t, nil
}

// Version returns the tree stored under key.
func (r *ResolvedNav) Version(key string) (Tree, bool) {
	for _, t := range r.Versions {
		if t.Key == key {
			return t, true
		}
	}
	return Tree{}, false
}

// MatchVersion reports which key SelectVersion would use for path.
func MatchVersion(path string, keys []string) (string, error) {
	return matchKey(path, keys)
}

func matchKey(path string, keys []string) (string, error) {
	p := ensureLeadingSlash(path)
	best, found := "", false
	hasDefault := false
	for _, k := range keys {
		if k == DefaultVersion {
			hasDefault = true
		}
		if k == "" {
			continue
		}
		if strings.HasPrefix(p, k) || strings.HasPrefix(p+"/", k) {
			if !found || len(k) > len(best) {
				best, found = k, true
			}
		}
	}
	if found {
		return best, nil
	}
	if hasDefault {
		return DefaultVersion, nil
	}
	return "", derrors.NotFoundError(ErrNoMatch.Message()).
		WithCause(&NoMatchError{Path: path, Keys: keys}).
		WithContext("path", path).
		Build()
}
