package client

import "github.com/BruksfildServices01/axanet-clients/internal/httperr"

// ===============================
// Error kinds
// ===============================

var (
	ErrEmptyName       = httperr.ErrBusiness("empty_name")
	ErrInvalidName     = httperr.ErrBusiness("invalid_name")
	ErrAlreadyExists   = httperr.ErrBusiness("already_exists")
	ErrNotFound        = httperr.ErrBusiness("client_not_found")
	ErrFileMissing     = httperr.ErrBusiness("file_missing")
	ErrCancelled       = httperr.ErrBusiness("cancelled")
	ErrMalformedRecord = httperr.ErrBusiness("malformed_record")
)
