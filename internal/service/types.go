package service

import (
	"context"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// APIClient performs one GET against the explorer backend and decodes the body into out.
	APIClient interface {
		Get(ctx context.Context, operation, path string, pathParams map[string]string, out any) error
	}
)
