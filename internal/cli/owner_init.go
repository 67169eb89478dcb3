package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Rrahullkumar/shushiman/internal/service"
)

// ErrPasswordMismatch is returned when the confirmation differs from the password
var ErrPasswordMismatch = errors.New("passwords do not match")

// OwnerRegistrar is the part of the auth service the bootstrap needs
type OwnerRegistrar interface {
	RegisterOwner(ctx context.Context, in service.RegisterOwnerInput) (*service.AuthResult, error)
}

// RunOwnerInit interactively collects owner details and creates the account
func RunOwnerInit(ctx context.Context, reader *bufio.Reader, w io.Writer, auth OwnerRegistrar) (*service.AuthResult, error) {
	name, err := GetSimpleText(reader, "Owner name", w)
	if err != nil {
		return nil, fmt.Errorf("read name: %w", err)
	}
	email, err := GetSimpleText(reader, "Owner email", w)
	if err != nil {
		return nil, fmt.Errorf("read email: %w", err)
	}
	restaurant, err := GetSimpleText(reader, "Restaurant name", w)
	if err != nil {
		return nil, fmt.Errorf("read restaurant name: %w", err)
	}

	password, err := GetPassword("Password", w)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	confirm, err := GetPassword("Confirm password", w)
	if err != nil {
		return nil, fmt.Errorf("read password confirmation: %w", err)
	}
	if password != confirm {
		return nil, ErrPasswordMismatch
	}

	return auth.RegisterOwner(ctx, service.RegisterOwnerInput{
		Name:           name,
		Email:          email,
		Password:       password,
		RestaurantName: restaurant,
	})
}
