// Package core holds the small numeric helpers shared by the filter
// packages: level conversions and float checks.
package core
