// Package connector stores photo and QR code objects on the local filesystem
// or in Azure Blob Storage, and renders QR codes.
package connector
