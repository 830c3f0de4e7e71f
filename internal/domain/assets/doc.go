// Package assets describes uploaded files: images and resumes written to
// storage, and HTML5 masthead archives extracted into their own directory.
package assets
