//go:build debug

package cpu

const assertionsEnabled = true
