// Package editor exposes the newsletter editor over HTTP.
//
// A Session holds the one newsletter being edited. It is owned by a single
// user, so every operation is a read-modify-write under one mutex and every
// change is handed to a project.Autosaver. Handler maps the content model
// operations, preview, linting, downloads, project files, image uploads and
// help pages onto routes.
package editor
