package usecase

import (
	"fmt"
	"strings"
	"time"

	domainErrors "github.com/sureshift/backend/internal/domain/errors"
	"github.com/sureshift/backend/internal/domain/model"
)

// OrderInput carries the raw intake fields of a pickup request.
type OrderInput struct {
	Name          string
	Email         string
	Phone         string
	PickupDate    string
	PickupTime    string
	PickupAddress string
	DropAddress   string
	Purpose       string
}

const pickupDateLayout = "2006-01-02"

var pickupTimeLayouts = []string{"15:04", "15:04:05"}

// ParseOrderInput validates the intake fields and converts them into an
// order draft. Every field is required and non-empty; pickup_date must be
// YYYY-MM-DD and pickup_time HH:MM.
func ParseOrderInput(in OrderInput) (*model.Order, error) {
	fields := map[string]*string{
		"name":           &in.Name,
		"email":          &in.Email,
		"phone":          &in.Phone,
		"pickup_date":    &in.PickupDate,
		"pickup_time":    &in.PickupTime,
		"pickup_address": &in.PickupAddress,
		"drop_address":   &in.DropAddress,
		"purpose":        &in.Purpose,
	}
	for name, value := range fields {
		*value = strings.TrimSpace(*value)
		if *value == "" {
			return nil, fmt.Errorf("%w: %s is required", domainErrors.ErrValidation, name)
		}
	}

	pickupDate, err := time.Parse(pickupDateLayout, in.PickupDate)
	if err != nil {
		return nil, fmt.Errorf("%w: pickup_date must be YYYY-MM-DD", domainErrors.ErrValidation)
	}

	pickupTime, err := parsePickupTime(in.PickupTime)
	if err != nil {
		return nil, err
	}

	return &model.Order{
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		PickupDate:    pickupDate,
		PickupTime:    pickupTime,
		PickupAddress: in.PickupAddress,
		DropAddress:   in.DropAddress,
		Purpose:       in.Purpose,
	}, nil
}

func parsePickupTime(value string) (string, error) {
	for _, layout := range pickupTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", fmt.Errorf("%w: pickup_time must be HH:MM", domainErrors.ErrValidation)
}
