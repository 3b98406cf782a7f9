//go:build !heif

package formats

// heifEnabled gates both AllCompatibleExtensions and Parse, so the registry
// and the enum can never disagree. Variable, not constant: tests flip it to
// cover both states.
var heifEnabled = false
