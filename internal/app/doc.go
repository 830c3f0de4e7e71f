// Package app implements the domain services: generic content management,
// the banner singleton, partners, job applications, newsletter subscribers,
// uploaded assets, admin authentication and the public site reader.
package app
