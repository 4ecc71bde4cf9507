// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "errors"

// Closed taxonomy of rejected sale operations. The text of each error is the
// identifier reported to callers.
var (
	ErrInvalidValue     = errors.New("InvalidValue")
	ErrExceedLimit      = errors.New("ExceedLimit")
	ErrSaleNotAvailable = errors.New("SaleNotAvailable")
	ErrSignedNotEnabled = errors.New("SignedNotEnabled")
	ErrInvalidSignature = errors.New("InvalidSignature")
	ErrInvalidAddress   = errors.New("InvalidAddress")
	ErrNotOwner         = errors.New("NotOwner")
)

var (
	ErrSaleNotFound = errors.New("sale not found")
	ErrSaleExists   = errors.New("sale already exists")
)

var saleErrors = []error{
	ErrInvalidValue,
	ErrExceedLimit,
	ErrSaleNotAvailable,
	ErrSignedNotEnabled,
	ErrInvalidSignature,
	ErrInvalidAddress,
	ErrNotOwner,
}

// ErrorKind returns the taxonomy identifier err wraps, or "Other".
func ErrorKind(err error) string {
	for _, e := range saleErrors {
		if errors.Is(err, e) {
			return e.Error()
		}
	}
	return "Other"
}
