// Package core holds small numeric and buffer helpers shared by the
// conversion and gain packages.
package core
