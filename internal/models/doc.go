// Package models provides functionality for listing the OpenAI
// text-to-speech models available to an API key, so users can pick a
// model for spoken spellings.
package models
