// Package domain contains the core domain models for the asset bundle graph.
package domain

import (
	"sort"
	"strings"
)

// AssetType enumerates the kinds of front-end resources bindle manages.
type AssetType string

const (
	// TypeScript is a JavaScript asset.
	TypeScript AssetType = "js"
	// TypeStylesheet is a CSS asset.
	TypeStylesheet AssetType = "css"
)

// Valid reports whether t is a known asset type.
func (t AssetType) Valid() bool {
	return t == TypeScript || t == TypeStylesheet
}

// ContentType returns the MIME type served for assets of this type.
func (t AssetType) ContentType() string {
	switch t {
	case TypeScript:
		return "application/javascript"
	case TypeStylesheet:
		return "text/css"
	default:
		return "application/octet-stream"
	}
}

// DefaultPosition returns the DOM position assets of this type are inserted
// at when the asset does not override it: scripts at the end of the body,
// stylesheets in the head.
func (t AssetType) DefaultPosition() DomPosition {
	if t == TypeStylesheet {
		return PositionHead
	}
	return PositionBody
}

// Extension returns the file extension embedded in cache keys.
func (t AssetType) Extension() string {
	return "." + string(t)
}

// TypeOfKey derives the asset type from the extension suffix of a cache key.
func TypeOfKey(key string) (AssetType, bool) {
	switch {
	case strings.HasSuffix(key, TypeScript.Extension()):
		return TypeScript, true
	case strings.HasSuffix(key, TypeStylesheet.Extension()):
		return TypeStylesheet, true
	default:
		return "", false
	}
}

// DomPosition is the place in the document an asset reference is emitted.
type DomPosition string

const (
	// PositionHead emits the asset inside the document head.
	PositionHead DomPosition = "head"
	// PositionBody emits the asset at the end of the document body.
	PositionBody DomPosition = "body"
)

// Asset is one logical front-end resource with one or more candidate
// locations. Assets are value types; Storage never shares the maps of a
// stored asset with callers.
type Asset struct {
	Name       string
	Version    string
	Type       AssetType
	Position   DomPosition       // empty means the type default applies
	Locations  map[string]string // location kind -> raw location
	Attributes map[string]string
}

// Valid reports whether the asset carries every required field. Invalid
// assets are silently dropped by Storage.
func (a Asset) Valid() bool {
	return a.Name != "" && a.Version != "" && a.Type.Valid() && len(a.Locations) > 0
}

// Key identifies an asset within a scope: two assets with the same key are
// the same logical resource. The name comparison is case-insensitive.
func (a Asset) Key() string {
	return strings.ToLower(a.Name) + "_" + string(a.Type)
}

// EffectivePosition resolves the DOM position, falling back to the type default.
func (a Asset) EffectivePosition() DomPosition {
	if a.Position != "" {
		return a.Position
	}
	return a.Type.DefaultPosition()
}

// LocationKinds returns the asset's declared location kinds in sorted order.
func (a Asset) LocationKinds() []string {
	kinds := make([]string, 0, len(a.Locations))
	for kind := range a.Locations {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Clone returns a deep copy of the asset.
func (a Asset) Clone() Asset {
	c := a
	c.Locations = make(map[string]string, len(a.Locations))
	for k, v := range a.Locations {
		c.Locations[k] = v
	}
	if a.Attributes != nil {
		c.Attributes = make(map[string]string, len(a.Attributes))
		for k, v := range a.Attributes {
			c.Attributes[k] = v
		}
	}
	return c
}

// String renders the asset identity used in diagnostics.
func (a Asset) String() string {
	return a.Name + "-" + a.Version + "-" + string(a.Type)
}
