package clipboard

import "testing"

func TestWriteText_Empty(t *testing.T) {
	if err := WriteText(""); err == nil {
		t.Error("expected error when copying empty text")
	}
}
