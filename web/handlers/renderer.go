package handlers

import (
	"html/template"
	"net/http"
)

type Renderer interface {
	Templates() *template.Template
	Handlers() map[string]http.HandlerFunc
	Data() map[string]interface{}
}
