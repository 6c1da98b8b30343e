// Package movetext splits PGN-style movetext into individual move tokens.
package movetext

import (
	"bufio"
	"io"
	"strings"
)

// Token is one move token and the line it was found on.
type Token struct {
	Text string
	Line uint
}

// Scanner reads move tokens from movetext. Move numbers ("1.", "12..."),
// {brace} and ;line comments, NAGs ($n), tag pairs ([Tag "value"]),
// variations in parentheses and trailing !/? annotations are skipped.
type Scanner struct {
	reader   *bufio.Reader
	line     string
	pos      int
	lineNum  uint
	eof      bool
	ravLevel uint

	// Set while inside a {comment} that spans lines.
	inComment bool
	err       error
}

// NewScanner creates a scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{reader: bufio.NewReader(r)}
}

// Err returns the first read error other than io.EOF.
func (s *Scanner) Err() error {
	return s.err
}

// nextLine loads the next input line. It returns false at end of input.
func (s *Scanner) nextLine() bool {
	if s.eof {
		return false
	}
	line, err := s.reader.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			s.err = err
		}
		s.eof = true
		if line == "" {
			return false
		}
	}
	s.line = line
	s.pos = 0
	s.lineNum++
	return true
}

// Next returns the next move token. ok is false when the input is exhausted.
func (s *Scanner) Next() (tok Token, ok bool) {
	for {
		if s.pos >= len(s.line) && !s.nextLine() {
			return Token{}, false
		}

		if s.inComment {
			s.skipComment()
			continue
		}

		c := s.line[s.pos]
		switch {
		case isSpace(c):
			s.pos++
		case c == '{':
			s.pos++
			s.inComment = true
		case c == ';', c == '%' && s.pos == 0:
			s.pos = len(s.line)
		case c == '[' && s.ravLevel == 0:
			s.skipPast(']')
		case c == '(':
			s.ravLevel++
			s.pos++
		case c == ')':
			if s.ravLevel > 0 {
				s.ravLevel--
			}
			s.pos++
		case c == '$':
			s.pos++
			s.word()
		default:
			word := s.word()
			if s.ravLevel > 0 {
				continue
			}
			if text := clean(word); text != "" {
				return Token{Text: text, Line: s.lineNum}, true
			}
		}
	}
}

// All reads every remaining token.
func (s *Scanner) All() []Token {
	var tokens []Token
	for {
		tok, ok := s.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// Texts reads every remaining token and returns only the texts.
func (s *Scanner) Texts() []string {
	tokens := s.All()
	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		texts[i] = tok.Text
	}
	return texts
}

// skipComment consumes input up to and including the closing brace.
func (s *Scanner) skipComment() {
	if end := strings.IndexByte(s.line[s.pos:], '}'); end >= 0 {
		s.pos += end + 1
		s.inComment = false
		return
	}
	s.pos = len(s.line)
}

// skipPast consumes input on the current line up to and including c.
func (s *Scanner) skipPast(c byte) {
	if end := strings.IndexByte(s.line[s.pos:], c); end >= 0 {
		s.pos += end + 1
		return
	}
	s.pos = len(s.line)
}

// word consumes a run of characters up to whitespace or a delimiter.
func (s *Scanner) word() string {
	start := s.pos
	for s.pos < len(s.line) && !isSpace(s.line[s.pos]) && !isDelimiter(s.line[s.pos]) {
		s.pos++
	}
	return s.line[start:s.pos]
}

// clean strips a leading move number and trailing annotation glyphs.
// A bare move number or "*" yields "".
func clean(word string) string {
	i := 0
	for i < len(word) && word[i] >= '0' && word[i] <= '9' {
		i++
	}
	if i > 0 && i < len(word) && word[i] == '.' {
		for i < len(word) && word[i] == '.' {
			i++
		}
		word = word[i:]
	}
	word = strings.TrimRight(word, "!?")
	if word == "*" {
		return ""
	}
	return word
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDelimiter(c byte) bool {
	return c == '{' || c == '(' || c == ')' || c == ';'
}
