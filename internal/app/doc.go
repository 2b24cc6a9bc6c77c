// Package app implements the use cases of the photo sharing service on top of
// the domain contracts.
package app
