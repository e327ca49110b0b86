// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

// Supported $ACADVER version codes (§6.1).
const (
	AC1012 = "AC1012" // R13
	AC1014 = "AC1014" // R14
	AC1015 = "AC1015" // 2000
	AC1018 = "AC1018" // 2004
	AC1021 = "AC1021" // 2007, first UTF-8 version
	AC1024 = "AC1024" // 2010
	AC1027 = "AC1027" // 2013
	AC1032 = "AC1032" // 2018+
)

// DefaultVersion is used by a Writer when the document's $ACADVER header
// variable is unset.
const DefaultVersion = AC1032

// versionOrder gives every supported version a monotonically increasing
// rank so isUTF8Version and version comparisons don't need to special
// case the catalogue's exact string spelling.
var versionOrder = map[string]int{
	AC1012: 0,
	AC1014: 1,
	AC1015: 2,
	AC1018: 3,
	AC1021: 4,
	AC1024: 5,
	AC1027: 6,
	AC1032: 7,
}

// SupportedVersion reports whether version is one of the catalogue in
// §6.1.
func SupportedVersion(version string) bool {
	_, ok := versionOrder[version]
	return ok
}

// binarySentinel opens every binary-encoded DXF stream (§4.2).
var binarySentinel = []byte("AutoCAD Binary DXF\r\n\x1A\x00")

// sectionOrder is the canonical order sections are emitted on write
// (§6.1); THUMBNAILIMAGE is optional and, when present, is written last
// of all, after OBJECTS and before EOF.
var sectionOrder = []string{"HEADER", "CLASSES", "TABLES", "BLOCKS", "ENTITIES", "OBJECTS"}

// tableOrder is the canonical order table definitions are emitted within
// the TABLES section (§6.1).
var tableOrder = []string{
	"VPORT", "LTYPE", "LAYER", "STYLE", "VIEW", "UCS", "APPID", "DIMSTYLE", "BLOCK_RECORD",
}
