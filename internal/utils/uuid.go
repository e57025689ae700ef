// Package utils provides general-purpose helper utilities used across
// different parts of the application: identifier generation, password
// hashing, session token generation and validation, and the shared HTTP
// client wrapper.
package utils

import "github.com/google/uuid"

type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
