// Package auth models admin accounts, their roles and session tokens.
package auth
