package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// QRPayloadType distinguishes merchant and peer QR codes.
type QRPayloadType string

const (
	QRExternalPayment QRPayloadType = "external_payment"
	QRUserPayment     QRPayloadType = "user_payment"
)

var (
	ErrQRMalformed   = errors.New("qr payload is not valid JSON")
	ErrQRUnsupported = errors.New("unsupported qr payload type")
	ErrQRIncomplete  = errors.New("qr payload is missing required fields")
)

// QRPayload is the JSON document encoded in a CashOut QR code.
type QRPayload struct {
	Type         QRPayloadType `json:"type"`
	MerchantID   string        `json:"merchantId,omitempty"`
	MerchantName string        `json:"merchantName,omitempty"`
	UserID       string        `json:"userId,omitempty"`
	Name         string        `json:"name,omitempty"`
	Timestamp    int64         `json:"timestamp"`
}

// ParseQRPayload decodes and validates a scanned QR payload.
func ParseQRPayload(raw string) (*QRPayload, error) {
	var p QRPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &p); err != nil {
		return nil, ErrQRMalformed
	}

	switch p.Type {
	case QRExternalPayment:
		if p.MerchantID == "" {
			return nil, ErrQRIncomplete
		}
	case QRUserPayment:
		if p.UserID == "" {
			return nil, ErrQRIncomplete
		}
	default:
		return nil, ErrQRUnsupported
	}
	return &p, nil
}

// NewMerchantQR builds the payload a merchant displays for customers to scan.
func NewMerchantQR(merchantID, merchantName string, now time.Time) QRPayload {
	return QRPayload{
		Type:         QRExternalPayment,
		MerchantID:   merchantID,
		MerchantName: merchantName,
		Timestamp:    now.UnixMilli(),
	}
}

// NewUserQR builds the payload a user shares to receive a transfer.
func NewUserQR(userID, name string, now time.Time) QRPayload {
	return QRPayload{
		Type:      QRUserPayment,
		UserID:    userID,
		Name:      name,
		Timestamp: now.UnixMilli(),
	}
}

// Encode renders the payload as the string stored in the QR image.
func (p QRPayload) Encode() (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
