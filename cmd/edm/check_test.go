package main

import (
	"bytes"
	"testing"

	"github.com/signadot/go-edm/value"
)

func TestWriteDiff(t *testing.T) {
	want := value.FromKeyVals("NS.T", []value.KeyVal{{Key: "A", Val: value.FromString("abc")}})
	got := value.FromKeyVals("NS.T", []value.KeyVal{{Key: "A", Val: value.FromString("abd")}})
	buf := &bytes.Buffer{}
	writeDiff(buf, want, got)
	if !bytes.Contains(buf.Bytes(), []byte("[-c-]{+d+}")) {
		t.Errorf("diff = %q", buf.String())
	}
}
