// Package content defines the site content entities edited from the admin
// dashboard (banner, partners, team, services, jobs, newsletter, social links
// and portfolio items) together with the repository and service contracts
// used to manage them.
package content
