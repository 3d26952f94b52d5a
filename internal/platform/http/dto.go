package http

import (
	"errors"
	"strings"

	"github.com/callsentry/callscreen/internal/engine"
)

type ScreenRequest struct {
	PhoneNumber string `json:"phone_number"`
	Mode        string `json:"mode"`
}

func (r *ScreenRequest) Validate() error {
	// The engine accepts any caller string, including sentinels like
	// "unknown"; only a fully empty value is rejected here.
	if strings.TrimSpace(r.PhoneNumber) == "" {
		return errors.New("phone_number is required")
	}

	// Mode names are owned by the engine; an absent mode means Smart.
	if _, err := engine.ParseMode(r.Mode); err != nil {
		return err
	}

	return nil
}
