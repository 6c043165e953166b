//go:build hedgedebug

package hedge

const debugChecks = true
