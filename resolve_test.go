// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import "testing"

func TestResolvePassDropsDanglingReactor(t *testing.T) {
	src := asciiLines(`0
SECTION
2
ENTITIES
0
LINE
5
1
102
{ACAD_REACTORS
330
DEAD
102
}
10
0.0
20
0.0
30
0.0
11
1.0
21
1.0
31
0.0
0
ENDSEC
0
EOF
`)
	r := NewReader(&ReaderOptions{Failsafe: true})
	d, err := r.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(d.Entities) != 1 {
		t.Fatalf("len(Entities) = %d, want 1", len(d.Entities))
	}
	line := d.Entities[0].(*Line)
	if len(line.Reactors) != 0 {
		t.Errorf("Reactors = %v, want empty after dangling-handle resolution", line.Reactors)
	}
	found := false
	for _, n := range d.Notifications() {
		if n.Kind == KindReactorDropped {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a KindReactorDropped notification, got %v", d.Notifications())
	}
}

func TestResolvePassKeepsLiveReactor(t *testing.T) {
	src := asciiLines(`0
SECTION
2
ENTITIES
0
CIRCLE
5
1
10
0.0
20
0.0
30
0.0
40
1.0
0
LINE
5
2
102
{ACAD_REACTORS
330
1
102
}
10
0.0
20
0.0
30
0.0
11
1.0
21
1.0
31
0.0
0
ENDSEC
0
EOF
`)
	r := NewReader(&ReaderOptions{Failsafe: true})
	d, err := r.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(d.Entities) != 2 {
		t.Fatalf("len(Entities) = %d, want 2", len(d.Entities))
	}
	line := d.Entities[1].(*Line)
	if len(line.Reactors) != 1 || line.Reactors[0] != Handle(1) {
		t.Errorf("Reactors = %v, want [1]", line.Reactors)
	}
}

func TestResolvePassRelocatesBlockOwnedEntityOutOfTopLevel(t *testing.T) {
	src := asciiLines(`0
SECTION
2
TABLES
0
TABLE
2
BLOCK_RECORD
70
1
0
BLOCK_RECORD
5
A
2
MYBLOCK
0
ENDTAB
0
ENDSEC
0
SECTION
2
BLOCKS
0
BLOCK
5
B
330
A
2
MYBLOCK
70
0
10
0.0
20
0.0
30
0.0
3
MYBLOCK
1

0
ENDBLK
0
ENDSEC
0
SECTION
2
ENTITIES
0
LINE
5
C
330
A
10
0.0
20
0.0
30
0.0
11
1.0
21
1.0
31
0.0
0
ENDSEC
0
EOF
`)
	r := NewReader(&ReaderOptions{Failsafe: true})
	d, err := r.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(d.Entities) != 0 {
		t.Fatalf("len(Entities) = %d, want 0: block-owned entity should have been relocated out of the top level", len(d.Entities))
	}
	if len(d.Blocks) != 1 {
		t.Fatalf("len(Blocks) = %d, want 1", len(d.Blocks))
	}
	blk := d.Blocks[0]
	if len(blk.Entities) != 1 {
		t.Fatalf("len(Blocks[0].Entities) = %d, want 1", len(blk.Entities))
	}
	if _, ok := blk.Entities[0].(*Line); !ok {
		t.Errorf("Blocks[0].Entities[0] type = %T, want *Line", blk.Entities[0])
	}
}

func TestResolvePassKeepsModelSpaceEntityAtTopLevel(t *testing.T) {
	src := asciiLines(`0
SECTION
2
TABLES
0
TABLE
2
BLOCK_RECORD
70
1
0
BLOCK_RECORD
5
A
2
*Model_Space
0
ENDTAB
0
ENDSEC
0
SECTION
2
ENTITIES
0
LINE
5
C
330
A
10
0.0
20
0.0
30
0.0
11
1.0
21
1.0
31
0.0
0
ENDSEC
0
EOF
`)
	r := NewReader(&ReaderOptions{Failsafe: true})
	d, err := r.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(d.Entities) != 1 {
		t.Fatalf("len(Entities) = %d, want 1: a *Model_Space-owned entity belongs at the top level", len(d.Entities))
	}
	if len(d.Blocks) != 0 {
		t.Fatalf("len(Blocks) = %d, want 0", len(d.Blocks))
	}
}
