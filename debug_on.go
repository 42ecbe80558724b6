//go:build rlemorph_debug

package rlemorph

// debugChecks enables canonical-form validation of every algebra input.
const debugChecks = true
