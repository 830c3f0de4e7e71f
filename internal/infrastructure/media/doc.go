// Package media inspects uploaded bytes: content sniffing, image dimensions,
// resume document types and masthead ZIP archives.
package media
