package allocator

import "github.com/Masterminds/semver/v3"

// BlockLayoutVersion identifies the on-region block-header layout: the
// two-field header shape, the default alignment, and the top-bit
// allocated flag described in spec §3/§4.5. It is not a build/module
// version — it exists so two processes that attach to the same
// persistent memory window (e.g. across a restart against an mmap'd
// file, see cmd/lwmem-mmap) can confirm they agree on layout before
// either one calls DefineRegion or Allocate against it.
var BlockLayoutVersion = semver.MustParse("1.0.0")
