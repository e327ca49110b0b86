// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

// Block is one BLOCKS-section block definition: a BLOCK header record,
// its body entities, and a terminating ENDBLK (§4.4).
type Block struct {
	Preamble
	Name      string
	Flags     int16
	BasePoint Point
	XrefPath  string
	Entities  []Entity
	EndBlk    Preamble
}

func (b *Block) applyField(code int, v Value) bool {
	switch code {
	case 2, 3:
		b.Name = v.Str()
	case 70:
		b.Flags = int16(v.Int())
	case 10:
		b.BasePoint.X = v.Float()
	case 20:
		b.BasePoint.Y = v.Float()
	case 30:
		b.BasePoint.Z = v.Float()
	case 1:
		b.XrefPath = v.Str()
	default:
		return false
	}
	return true
}

// Class is one CLASSES-section custom class registration (§4.4), kept
// as a flat record since this library never needs to instantiate
// proxy objects/entities itself.
type Class struct {
	RecordName    string
	ClassName     string
	AppName       string
	ProxyFlags    int32
	InstanceCount int32
	WasZombie     bool
	ItemType      int16
}
