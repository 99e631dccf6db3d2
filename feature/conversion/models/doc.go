// Package models defines the request and response payloads of the conversion API.
package models
