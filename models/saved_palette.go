package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidEditKey = errors.New("invalid edit key")

// SavedPalette is a palette a user chose to keep. Only the bcrypt hash of its
// edit key is stored.
type SavedPalette struct {
	ID          string    `json:"id" db:"id"`
	Palette     Palette   `json:"palette" db:"palette"`
	EditKeyHash string    `json:"-" db:"edit_key_hash"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type SavePaletteRequest struct {
	Palette Palette `json:"palette"`
}

type SavePaletteResponse struct {
	Palette    SavedPalette `json:"saved"`
	EditKey    string       `json:"editKey"`
	ShareToken string       `json:"shareToken"`
	ShareURL   string       `json:"shareUrl"`
	ExpiresAt  time.Time    `json:"expiresAt"`
}

func (sp SavedPalette) GenerateKey() string {
	return uuid.New().String()
}

// NewSavedPalette assigns a fresh id and edit key to p. The plain edit key is
// returned once and never stored.
func NewSavedPalette(p Palette) (SavedPalette, string, error) {
	var saved SavedPalette
	id := saved.GenerateKey()
	editKey := saved.GenerateKey()

	hashedKey, hashErr := saved.GenerateHash(editKey)
	if hashErr != nil {
		return SavedPalette{}, "", hashErr
	}

	p.ID = id
	saved = SavedPalette{
		ID:          id,
		Palette:     p,
		EditKeyHash: hashedKey,
		CreatedAt:   time.Now().UTC(),
	}
	return saved, editKey, nil
}

func (sp SavedPalette) GenerateHash(editKey string) (string, error) {
	hashedKey, hashErr := bcrypt.GenerateFromPassword([]byte(editKey), 8)
	if hashErr != nil {
		return "", fmt.Errorf("error hashing edit key %v", hashErr)
	}
	return string(hashedKey), nil
}

func (sp SavedPalette) CheckEditKey(editKey string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(sp.EditKeyHash), []byte(editKey)); err != nil {
		return ErrInvalidEditKey
	}
	return nil
}

type SavedPaletteList struct {
	Palettes []SavedPalette `json:"palettes"`
	Count    int            `json:"count"`
}
