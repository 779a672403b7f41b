// Package loader supplies the narrow collaborator contract §6 calls "the
// loader contract": a way to get from a file on disk to the
// (persons, families) maps the core consumes. §1 places the loader out of
// scope for the comparison core itself; this package exists only to give
// the CLI something concrete to call.
package loader

import "github.com/cacack/wavematch/internal/domain"

// Loader loads a single genealogical tree from a file path into the
// id-keyed maps the Tree Index builds from (§6's "Loader contract"). The
// invariants §3 requires (resolved cross-references, normalized gender,
// parsed dates) must already hold on the returned data.
type Loader interface {
	Load(path string) (persons map[string]*domain.Person, families map[string]*domain.Family, err error)
}
