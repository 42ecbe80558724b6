//go:build !rlemorph_debug

package rlemorph

const debugChecks = false
