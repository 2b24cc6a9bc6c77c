// Package comments defines comments left on photo posts.
package comments
