// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type AuthorizationError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorizationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }

// determine the class of an error
func IsErrAuthorization(e error) bool { _, ok := e.(AuthorizationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }

// common errors - keep in alphabetic order
var (
	AlreadyInitialised        = ProcessError("already initialised")
	CertificateFileExists     = ExistsError("certificate file already exists")
	InvalidChain              = InvalidError("invalid chain")
	InvalidCount              = InvalidError("invalid count")
	InvalidCursor             = InvalidError("invalid cursor")
	InvalidIpAddress          = InvalidError("invalid IP Address")
	InvalidStructPointer      = ProcessError("invalid struct pointer")
	KeyFileExists             = ExistsError("key file already exists")
	MissingParameters         = InvalidError("missing parameters")
	NotAvailableDuringStartup = ProcessError("not available during startup")
	NotInitialised            = ProcessError("not initialised")
	RateLimiting              = ProcessError("rate limiting")
	TransactionAlreadyInUse   = ProcessError("transaction already in use")
	WrongNetworkForPublic     = InvalidError("wrong network for public")
)

// account errors - keep in alphabetic order
var (
	AccountNameLength  = InvalidError("account name length is invalid")
	InvalidAccountName = InvalidError("account name contains invalid characters")
	LesseeNotFound     = NotFoundError("lessee not found")
	LessorNotFound     = NotFoundError("lessor not found")
	WrongLesseeAccount = AuthorizationError("lessee record does not match caller")
	WrongLessorAccount = AuthorizationError("lessor record does not match caller")
)

// asset errors - keep in alphabetic order
var (
	AssetAlreadyExists     = ExistsError("asset already exists")
	AssetAlreadyLeased     = InvalidError("asset already leased")
	AssetAlreadyOwned      = InvalidError("asset already owned")
	AssetIdLength          = InvalidError("asset id length is invalid")
	AssetNotFound          = NotFoundError("asset not found")
	AssetNotLeased         = InvalidError("asset is not leased")
	AssetNotLeasedByCaller = AuthorizationError("asset is not leased by caller")
	AssetNotOwnedByCaller  = AuthorizationError("asset is not owned by caller")
	NotAssetRecord         = ProcessError("not an asset record")
	NotLesseeRecord        = ProcessError("not a lessee record")
	NotLessorRecord        = ProcessError("not a lessor record")
)

// balance errors - keep in alphabetic order
var (
	InsufficientDeposit   = InvalidError("insufficient deposit balance")
	InsufficientFunds     = ProcessError("insufficient funds for transfer")
	InvalidWithdrawAmount = InvalidError("withdraw amount must be greater than zero and within accumulated income")
	NoAccumulatedIncome   = InvalidError("no accumulated income")
	TransferFailed        = ProcessError("value transfer failed")
)

// seeding errors - keep in alphabetic order
var (
	SeedingNotAllowed = InvalidError("asset seeding is not allowed on this chain")
)
