// Package internal contains the shared infrastructure for routekit:
// logging, identity generation and localization.
// Types and functions in this package are not part of the public API.
package internal
