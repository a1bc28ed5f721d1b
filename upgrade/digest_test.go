// Copyright 2026 The Wormhole Circle Integration Authors
// SPDX-License-Identifier: Apache-2.0

package upgrade

import "testing"

func TestPackageDigestOrderIndependent(t *testing.T) {
	a := [][]byte{[]byte("module-a"), []byte("module-b"), []byte("module-c")}
	b := [][]byte{[]byte("module-c"), []byte("module-a"), []byte("module-b")}

	if PackageDigest(a) != PackageDigest(b) {
		t.Error("digest depends on module order")
	}
}

func TestPackageDigestContentSensitive(t *testing.T) {
	base := PackageDigest([][]byte{[]byte("module-a"), []byte("module-b")})

	cases := map[string][][]byte{
		"changed byte":     {[]byte("module-a"), []byte("module-B")},
		"dropped module":   {[]byte("module-a")},
		"extra module":     {[]byte("module-a"), []byte("module-b"), []byte("module-c")},
		"merged modules":   {[]byte("module-amodule-b")},
		"shifted boundary": {[]byte("module-am"), []byte("odule-b")},
	}
	for name, modules := range cases {
		if PackageDigest(modules) == base {
			t.Errorf("%s: digest collision", name)
		}
	}
}

func TestPackageDigestDoesNotReorderInput(t *testing.T) {
	modules := [][]byte{[]byte("zz"), []byte("aa")}
	PackageDigest(modules)
	if string(modules[0]) != "zz" {
		t.Error("caller's slice was reordered")
	}
}
