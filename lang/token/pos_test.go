package token

import "testing"

func TestPosLineCol(t *testing.T) {
	p := MakePos(12, 34)
	line, col := p.LineCol()
	if line != 12 || col != 34 {
		t.Fatalf("got (%d, %d), want (12, 34)", line, col)
	}
	if !p.IsValid() {
		t.Fatal("expected valid position")
	}
}

func TestPosInvalid(t *testing.T) {
	if NoPos.IsValid() {
		t.Fatal("NoPos must not be valid")
	}
	p := MakePos(0, 5)
	if p.IsValid() {
		t.Fatal("a zero line must be invalid")
	}
}

func TestFilePosition(t *testing.T) {
	fs := NewFileSet()
	f := fs.File("foo.a68")
	pos := f.Position(MakePos(3, 7))
	if pos.String() != "foo.a68:3:7" {
		t.Fatalf("got %q", pos.String())
	}

	if fs.File("foo.a68") != f {
		t.Fatal("FileSet.File should return the same File for the same name")
	}
}

func TestPositionUnknown(t *testing.T) {
	var f File
	pos := f.Position(NoPos)
	if pos.IsValid() {
		t.Fatal("expected an invalid position")
	}
	if pos.String() != "-" {
		t.Fatalf("got %q", pos.String())
	}
}
