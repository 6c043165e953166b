//go:build !hedgedebug

package hedge

const debugChecks = false
