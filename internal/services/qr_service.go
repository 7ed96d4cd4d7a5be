package services

import (
	"context"
	"fmt"

	"github.com/skip2/go-qrcode"
)

const qrImageSize = 256

type accountLookup interface {
	Exists(ctx context.Context, accountNumber string) (bool, error)
}

// QRService renders account numbers as PNG QR codes so they can be shared
// for deposits.
type QRService struct {
	accounts accountLookup
}

func NewQRService(accounts accountLookup) *QRService {
	return &QRService{accounts: accounts}
}

func (s *QRService) AccountQRCode(ctx context.Context, accountNumber string) ([]byte, error) {
	exists, err := s.accounts.Exists(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, NotFoundError("Account not found")
	}

	png, err := qrcode.Encode(accountNumber, qrcode.Medium, qrImageSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}
