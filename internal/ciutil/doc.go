// Package ciutil detects CI environments and resolves environment variables
// that have more than one accepted name.
package ciutil
