// Package users defines user accounts, roles and the authentication contracts
// of the photo sharing service.
package users
