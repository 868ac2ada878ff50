// Package errlog collects compiler diagnostics with source locations so
// the driver can print them as `file:line:col: message`.
package errlog

// Location packs a file index, line and column into one value.
type Location int64

// LocationRange ...
type LocationRange struct {
	From Location
	To   Location
}

// LocationMap resolves the file index of a Location back to a file name.
type LocationMap struct {
	files []*SourceFile
}

// SourceFile ...
type SourceFile struct {
	Name string
}

// NewSourceFile ...
func NewSourceFile(name string) *SourceFile {
	return &SourceFile{Name: name}
}

// EncodeLocation ...
func EncodeLocation(file int, line int, pos int) Location {
	return Location((uint64(file) << 48) | (uint64(line) << 32) | uint64(pos))
}

// EncodeLocationRange ...
func EncodeLocationRange(file int, fromLine int, fromPos int, toLine int, toPos int) LocationRange {
	return LocationRange{
		From: EncodeLocation(file, fromLine, fromPos),
		To:   EncodeLocation(file, toLine, toPos),
	}
}

// Point returns a zero-width range at the given position.
func Point(file int, line int, pos int) LocationRange {
	loc := EncodeLocation(file, line, pos)
	return LocationRange{From: loc, To: loc}
}

// NewLocationMap ...
func NewLocationMap() *LocationMap {
	return &LocationMap{}
}

// AddFile ...
func (l *LocationMap) AddFile(f *SourceFile) int {
	l.files = append(l.files, f)
	return len(l.files) - 1
}

// Decode ...
func (l *LocationMap) Decode(loc Location) (*SourceFile, int, int) {
	file := l.files[uint64(loc)>>48]
	line := int((uint64(loc) >> 32) & 0xffff)
	pos := int(uint64(loc) & 0xffffffff)
	return file, line, pos
}
