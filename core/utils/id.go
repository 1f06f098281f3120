package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateID returns a short url-safe identifier.
func GenerateID() string {
	id, err := gonanoid.Generate(idAlphabet, 7)
	if err != nil {
		return ""
	}
	return id
}

// GenerateSlugSuffix returns a short lowercase suffix used to disambiguate
// colliding slugs.
func GenerateSlugSuffix() string {
	id, err := gonanoid.Generate("0123456789abcdefghijklmnopqrstuvwxyz", 5)
	if err != nil {
		return ""
	}
	return id
}
