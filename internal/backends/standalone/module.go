package standalone

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/vs-ude/skslc/internal/errlog"
	"github.com/vs-ude/skslc/internal/sksl"
)

// LoadModule reads a shared module file and records its top-level
// symbols and elements. The module source gets the same lexical
// validation as a regular program.
func (t *Toolchain) LoadModule(kind sksl.ProgramKind, path string) (*sksl.Module, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errlog.NewError(errlog.ErrorModuleNotFound, errlog.LocationRange{}, path)
	}
	source := string(data)

	log := errlog.NewErrorLog()
	lmap := errlog.NewLocationMap()
	file := lmap.AddFile(errlog.NewSourceFile(path))
	scanSource(source, file, log)
	if len(log.Errors) != 0 {
		return nil, errors.New(strings.TrimSuffix(log.ToString(lmap), "\n"))
	}

	m := &sksl.Module{Name: strings.TrimSuffix(filepath.Base(path), ".sksl")}
	m.Elements = splitElements(source)
	for _, el := range m.Elements {
		if sym := symbolName(el); sym != "" {
			m.Symbols = append(m.Symbols, sym)
		}
	}
	if len(m.Symbols) == 0 {
		return nil, errlog.NewError(errlog.ErrorModuleEmpty, errlog.LocationRange{}, m.Name)
	}
	return m, nil
}

// splitElements partitions module source into top-level elements: a
// braced definition or a `;`-terminated declaration each form one
// element. Comments are skipped so braces inside them don't count.
func splitElements(source string) []string {
	var elements []string
	depth := 0
	start := 0
	i := 0
	for i < len(source) {
		switch c := source[i]; c {
		case '/':
			if i+1 < len(source) && source[i+1] == '/' {
				for i < len(source) && source[i] != '\n' {
					i++
				}
				continue
			}
			if i+1 < len(source) && source[i+1] == '*' {
				end := strings.Index(source[i+2:], "*/")
				if end < 0 {
					i = len(source)
				} else {
					i += end + 4
				}
				continue
			}
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				elements = appendElement(elements, source[start:i+1])
				start = i + 1
			}
		case ';':
			if depth == 0 {
				elements = appendElement(elements, source[start:i+1])
				start = i + 1
			}
		}
		i++
	}
	return appendElement(elements, source[start:])
}

func appendElement(elements []string, text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return elements
	}
	return append(elements, text)
}

// symbolName extracts the declared name of a top-level element: the last
// identifier before the first `(`, `=`, `{` or `;`.
func symbolName(element string) string {
	end := len(element)
	for i, c := range element {
		if c == '(' || c == '=' || c == '{' || c == ';' {
			end = i
			break
		}
	}
	fields := strings.Fields(element[:end])
	if len(fields) < 2 {
		// A lone token has no type in front of it and cannot be a
		// declaration.
		return ""
	}
	name := fields[len(fields)-1]
	for _, c := range name {
		if c != '_' && !(c >= 'a' && c <= 'z') && !(c >= 'A' && c <= 'Z') && !(c >= '0' && c <= '9') {
			return ""
		}
	}
	return name
}

// dehydrateVersion is bumped whenever the serialized layout changes.
const dehydrateVersion = 1

var dehydrateMagic = [4]byte{'S', 'K', 'S', 'L'}

// Dehydrate serializes the module into the compact binary form embedded
// into generated source files. Layout: 4-byte magic, uint16 version,
// then the symbol and element lists, each uint16-counted with
// uint16-length-prefixed entries. All integers are little endian.
func (t *Toolchain) Dehydrate(m *sksl.Module) ([]byte, error) {
	if m == nil {
		return nil, errors.New("no module to dehydrate")
	}
	buf := new(bytes.Buffer)
	buf.Write(dehydrateMagic[:])
	binary.Write(buf, binary.LittleEndian, uint16(dehydrateVersion))
	binary.Write(buf, binary.LittleEndian, uint16(len(m.Symbols)))
	for _, s := range m.Symbols {
		writeEntry(buf, s)
	}
	binary.Write(buf, binary.LittleEndian, uint16(len(m.Elements)))
	for _, e := range m.Elements {
		writeEntry(buf, e)
	}
	return buf.Bytes(), nil
}

func writeEntry(buf *bytes.Buffer, s string) {
	binary.Write(buf, binary.LittleEndian, uint16(len(s)))
	buf.WriteString(s)
}
