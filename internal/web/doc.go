// Package web renders the public agency pages and the admin dashboard from
// embedded pongo2 templates.
package web
