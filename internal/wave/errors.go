package wave

import "errors"

// ErrAnchorMissing is the engine's one fatal, pre-run condition (§7):
// either anchor id is absent from its tree.
var ErrAnchorMissing = errors.New("anchor missing")
