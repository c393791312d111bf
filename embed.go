package folio

import "embed"

// EmbeddedAssets contains static assets shipped with folio: style.css
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
