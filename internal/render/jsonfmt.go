package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Limits trims bodies before printing. Zero fields mean no limit.
type Limits struct {
	MaxArrayItems int // Keep the first N array items, then a "... (k more items)" marker
	MaxStringLen  int // Truncate strings longer than N characters
	MaxDepth      int // Replace values nested N levels deep with "[max depth]"
}

var errInvalidJSON = errors.New("invalid JSON")

const indentUnit = "  "

// PrettyJSON re-indents data with two spaces per level. Object key order,
// number literals and non-ASCII characters are kept as written; string escapes
// are normalized. lim is applied while printing.
func PrettyJSON(data []byte, lim Limits) (string, error) {
	if !json.Valid(data) {
		return "", errInvalidJSON
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	p := &printer{dec: dec, lim: lim}
	if err := p.value(0); err != nil {
		return "", err
	}
	return p.b.String(), nil
}

type printer struct {
	dec *json.Decoder
	b   strings.Builder
	lim Limits
}

func (p *printer) value(depth int) error {
	if p.lim.MaxDepth > 0 && depth >= p.lim.MaxDepth {
		if err := p.skip(); err != nil {
			return err
		}
		p.writeString("[max depth]")
		return nil
	}

	tok, err := p.dec.Token()
	if err != nil {
		return err
	}

	switch t := tok.(type) {
	case json.Delim:
		if t == '{' {
			return p.object(depth)
		}
		return p.array(depth)
	case string:
		p.writeString(p.lim.truncate(t))
	case json.Number:
		p.b.WriteString(t.String())
	case bool:
		p.b.WriteString(strconv.FormatBool(t))
	case nil:
		p.b.WriteString("null")
	}
	return nil
}

func (p *printer) object(depth int) error {
	p.b.WriteByte('{')
	n := 0
	for p.dec.More() {
		tok, err := p.dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)

		p.itemStart(n, depth+1)
		p.writeString(key)
		p.b.WriteString(": ")
		if err := p.value(depth + 1); err != nil {
			return err
		}
		n++
	}
	return p.close(n, depth, '}')
}

func (p *printer) array(depth int) error {
	p.b.WriteByte('[')
	n, dropped := 0, 0
	for p.dec.More() {
		if p.lim.MaxArrayItems > 0 && n >= p.lim.MaxArrayItems {
			if err := p.skip(); err != nil {
				return err
			}
			dropped++
			continue
		}
		p.itemStart(n, depth+1)
		if err := p.value(depth + 1); err != nil {
			return err
		}
		n++
	}
	if dropped > 0 {
		p.itemStart(n, depth+1)
		p.writeString(fmt.Sprintf("... (%d more items)", dropped))
		n++
	}
	return p.close(n, depth, ']')
}

// skip consumes one complete value without printing it.
func (p *printer) skip() error {
	level := 0
	for {
		tok, err := p.dec.Token()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				level++
			case '}', ']':
				level--
			}
		}
		if level == 0 {
			return nil
		}
	}
}

func (p *printer) itemStart(n, depth int) {
	if n > 0 {
		p.b.WriteByte(',')
	}
	p.b.WriteByte('\n')
	p.b.WriteString(strings.Repeat(indentUnit, depth))
}

// close consumes the closing delimiter; empty containers stay on one line.
func (p *printer) close(n, depth int, delim byte) error {
	if _, err := p.dec.Token(); err != nil {
		return err
	}
	if n > 0 {
		p.b.WriteByte('\n')
		p.b.WriteString(strings.Repeat(indentUnit, depth))
	}
	p.b.WriteByte(delim)
	return nil
}

func (p *printer) writeString(s string) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail
	_ = enc.Encode(s)
	p.b.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}

func (l Limits) truncate(s string) string {
	if l.MaxStringLen <= 0 {
		return s
	}
	total := utf8.RuneCountInString(s)
	if total <= l.MaxStringLen {
		return s
	}

	cut := 0
	for i := 0; i < l.MaxStringLen; i++ {
		_, size := utf8.DecodeRuneInString(s[cut:])
		cut += size
	}
	return s[:cut] + fmt.Sprintf("... (%d more chars)", total-l.MaxStringLen)
}
