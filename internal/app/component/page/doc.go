// Package page provides the full-page templates of the larder web app.
package page
