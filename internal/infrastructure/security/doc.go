// Package security implements password hashing and JWT issuing for user authentication.
package security
