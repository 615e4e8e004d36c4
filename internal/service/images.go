package service

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/youruser/opdeck/internal/errors"
	imagepkg "github.com/youruser/opdeck/internal/image"
)

const (
	DefaultQRSize = 400
	maxQRSize     = 2048
)

// DeckURL is the public link encoded in share QR codes.
func (s *DeckService) DeckURL(deckID string) string {
	return s.baseURL + "/decks/" + deckID
}

// DeckQR renders the deck link as a PNG QR code.
func (s *DeckService) DeckQR(ctx context.Context, deckID string, size int) ([]byte, error) {
	if size == 0 {
		size = DefaultQRSize
	}
	if size < 64 || size > maxQRSize {
		return nil, errors.InvalidArgumentf("qr size must be between 64 and %d", maxQRSize)
	}
	if _, err := s.repo.GetDeck(ctx, deckID); err != nil {
		return nil, err
	}
	b, err := imagepkg.GenerateQRPNG(s.DeckURL(deckID), size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render qr code")
	}
	return b, nil
}

// HandImage renders the user's current hand as a PNG, with the deck QR
// code beside it.
func (s *DeckService) HandImage(ctx context.Context, userID, deckID string) ([]byte, error) {
	hand, err := s.GetHand(ctx, userID, deckID)
	if err != nil {
		return nil, err
	}
	srcs := make([]string, len(hand.Cards))
	for i, c := range hand.Cards {
		if card, ok := s.catalog.Lookup(c.Type, c.CardID); ok {
			srcs[i] = s.imageSource(card.ImageURL)
		}
	}
	imgs, err := imagepkg.DownloadAll(ctx, srcs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load card images")
	}
	qr, err := imagepkg.GenerateQRImage(s.DeckURL(deckID), DefaultQRSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render qr code")
	}
	b, err := imagepkg.EncodePNG(imagepkg.ComposeHandImage(imgs, qr))
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode hand image")
	}
	return b, nil
}

func (s *DeckService) imageSource(src string) string {
	if src == "" || strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return src
	}
	if s.imageDir == "" {
		return ""
	}
	return filepath.Join(s.imageDir, filepath.FromSlash(src))
}
