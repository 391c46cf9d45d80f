package config

//go:generate go tool go-enum --marshal -f enums.go

// Specification of image resizing mode for resolved assets.
// ENUM(none, keepAR, stretch)
type ImageResizeMode int

// Preferred orientation for asset search.
// ENUM(any, landscape, portrait, square)
type Orientation int
