package utils

import "github.com/google/uuid"

// UUIDGenerator issues client-side contact identifiers.
// V7 is preferred because it sorts by creation time; the random V4 form is
// the fallback when V7 generation fails.
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
