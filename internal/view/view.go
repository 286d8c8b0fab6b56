// Package view renders the HTML pages and the fragments patched in over SSE.
package view

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/msomdec/notekeeper/internal/service"
)

// Message is a one-shot status line shown above the page content.
type Message struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

const (
	LevelSuccess = "success"
	LevelError   = "error"
)

// NoteElementID is the DOM id of a rendered note card.
func NoteElementID(noteID int64) string {
	return "note-" + strconv.FormatInt(noteID, 10)
}

func deleteURL(noteID int64) string {
	return "/notes/" + strconv.FormatInt(noteID, 10) + "/delete"
}

// datastarPost submits the enclosing form to url as form data.
func datastarPost(url string) string {
	return "@post('" + url + "', {contentType: 'form'})"
}

func pageURL(number int) templ.SafeURL {
	return templ.SafeURL("/?page=" + strconv.Itoa(number))
}

func pageLabel(p *service.Page) string {
	return "Page " + strconv.Itoa(p.Number) + " of " + strconv.Itoa(p.TotalPages)
}
