// Package component provides component templates used by the larder web app.
package component

import "github.com/stolasapp/larder/internal/sec"

// Page is the per-request state shared by every full page.
type Page struct {
	Title  string
	User   sec.Identity
	Notice Notice
	CSRF   string
}
