// Package validators holds custom go-playground/validator rules shared by the domain packages.
package validators
