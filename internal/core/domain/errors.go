package domain

import "go.trai.ch/zerr"

var (
	// ErrAssetAlreadyExists is returned when two assets share a name and type
	// within one scope but carry different versions.
	ErrAssetAlreadyExists = zerr.New("asset already exists in scope")

	// ErrDetachedScopeNotAllowed is returned when the detached scope is used
	// as a scope rather than as a parent reference.
	ErrDetachedScopeNotAllowed = zerr.New("detached scope is only allowed as a parent")

	// ErrParentScopeIncompatibility is returned when a scope is re-linked to a
	// parent different from the one it was first declared under.
	ErrParentScopeIncompatibility = zerr.New("scope is already linked to another parent")

	// ErrUndefinedParentScope is returned when a scope references a parent
	// that has not been declared.
	ErrUndefinedParentScope = zerr.New("undefined parent scope")

	// ErrLocationConflict is returned when merging two declarations of the
	// same asset that both set the same location kind.
	ErrLocationConflict = zerr.New("location kind already exists in scope")

	// ErrAttributeConflict is returned when merging two declarations of the
	// same asset that both set the same attribute.
	ErrAttributeConflict = zerr.New("attribute already exists in scope")

	// ErrDomPositionMismatch is returned when merging two declarations of the
	// same asset that disagree on the DOM position.
	ErrDomPositionMismatch = zerr.New("dom position mismatch in scope")

	// ErrNoWrapper is returned when a location kind has no registered wrapper.
	ErrNoWrapper = zerr.New("no wrapper registered for location kind")

	// ErrContentFetch is returned when the raw content behind an asset
	// location cannot be retrieved.
	ErrContentFetch = zerr.New("failed to fetch asset content")

	// ErrCompression is returned when the compressor cannot process an
	// asset's content.
	ErrCompression = zerr.New("failed to compress asset content")
)
