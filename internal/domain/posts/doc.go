// Package posts defines photo posts, their tags and the storage contracts
// used to keep the image and QR code objects.
package posts
