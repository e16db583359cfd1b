package render

import (
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// maxBracketDepth is the bracket pair stack limit from UAX #9 BD16.
const maxBracketDepth = 63

// brackets maps opening paired brackets to their closing counterpart.
var brackets = map[rune]rune{
	'(': ')', '[': ']', '{': '}',
	'⁅': '⁆', '⁽': '⁾', '₍': '₎',
	'\u2329': '\u232a', '〈': '〉', '《': '》', '「': '」', '『': '』',
	'【': '】', '〔': '〕', '〖': '〗', '〘': '〙', '〚': '〛',
	'（': '）', '［': '］', '｛': '｝', '｟': '｠', '｢': '｣',
}

// mirrors maps glyphs to the mirrored form drawn at right-to-left levels.
var mirrors = func() map[rune]rune {
	m := map[rune]rune{'<': '>', '>': '<', '«': '»', '»': '«', '‹': '›', '›': '‹'}
	for open, closing := range brackets {
		m[open] = closing
		m[closing] = open
	}
	return m
}()

// Bidi reorders s from logical to visual order so that names mixing
// right-to-left and left-to-right scripts read correctly in a terminal that
// draws cells strictly left to right. Pure left-to-right input is returned
// unchanged. Each line is one paragraph whose direction comes from its first
// strong character.
func Bidi(s string) string {
	if s == "" || !hasRTL(s) {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = reorderLine(line)
	}
	return strings.Join(lines, "\n")
}

func hasRTL(s string) bool {
	for _, r := range s {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.R, bidi.AL:
			return true
		}
	}
	return false
}

// paragraph holds one line while its embedding levels are resolved.
// Explicit embeddings and overrides are not honoured: their formatting
// characters are treated as boundary neutrals and isolates as neutrals.
type paragraph struct {
	runes  []rune
	orig   []bidi.Class // classes before any rule ran
	types  []bidi.Class // classes as rewritten by the weak and neutral rules
	idx    []int        // positions taking part in resolution (no BN)
	base   int          // paragraph embedding level, 0 or 1
	levels []int
}

func reorderLine(s string) string {
	if s == "" {
		return s
	}
	p := newParagraph([]rune(s))
	p.resolveWeak()
	p.resolveBrackets()
	p.resolveNeutrals()
	p.resolveImplicit()
	p.resetTrailingWhitespace()
	return string(p.visual())
}

func newParagraph(runes []rune) *paragraph {
	p := &paragraph{
		runes: runes,
		orig:  make([]bidi.Class, len(runes)),
		types: make([]bidi.Class, len(runes)),
	}
	for i, r := range runes {
		p.orig[i] = classOf(r)
	}
	copy(p.types, p.orig)

	for i, c := range p.orig {
		if c != bidi.BN {
			p.idx = append(p.idx, i)
		}
	}
	for _, c := range p.orig {
		if c == bidi.L {
			break
		}
		if c == bidi.R || c == bidi.AL {
			p.base = 1
			break
		}
	}
	return p
}

func classOf(r rune) bidi.Class {
	props, _ := bidi.LookupRune(r)
	switch c := props.Class(); c {
	case bidi.LRE, bidi.RLE, bidi.LRO, bidi.RLO, bidi.PDF, bidi.Control:
		return bidi.BN
	case bidi.LRI, bidi.RLI, bidi.FSI, bidi.PDI:
		return bidi.ON
	default:
		return c
	}
}

// direction returns the embedding direction of the paragraph, which is also
// its sos and eos type.
func (p *paragraph) direction() bidi.Class {
	if p.base%2 == 1 {
		return bidi.R
	}
	return bidi.L
}

func (p *paragraph) at(k int) bidi.Class     { return p.types[p.idx[k]] }
func (p *paragraph) set(k int, c bidi.Class) { p.types[p.idx[k]] = c }

// resolveWeak applies rules W1 to W7.
func (p *paragraph) resolveWeak() {
	n := len(p.idx)
	sos := p.direction()

	// W1
	prev := sos
	for k := range n {
		if p.at(k) == bidi.NSM {
			p.set(k, prev)
		}
		prev = p.at(k)
	}

	// W2, W3
	last := sos
	for k := range n {
		switch p.at(k) {
		case bidi.L, bidi.R:
			last = p.at(k)
		case bidi.AL:
			last = bidi.AL
			p.set(k, bidi.R)
		case bidi.EN:
			if last == bidi.AL {
				p.set(k, bidi.AN)
			}
		}
	}

	// W4
	for k := 1; k+1 < n; k++ {
		before, after := p.at(k-1), p.at(k+1)
		switch p.at(k) {
		case bidi.ES:
			if before == bidi.EN && after == bidi.EN {
				p.set(k, bidi.EN)
			}
		case bidi.CS:
			if before == after && (before == bidi.EN || before == bidi.AN) {
				p.set(k, before)
			}
		}
	}

	// W5
	for k := 0; k < n; {
		if p.at(k) != bidi.ET {
			k++
			continue
		}
		end := k
		for end < n && p.at(end) == bidi.ET {
			end++
		}
		if (k > 0 && p.at(k-1) == bidi.EN) || (end < n && p.at(end) == bidi.EN) {
			for j := k; j < end; j++ {
				p.set(j, bidi.EN)
			}
		}
		k = end
	}

	// W6
	for k := range n {
		switch p.at(k) {
		case bidi.ES, bidi.ET, bidi.CS:
			p.set(k, bidi.ON)
		}
	}

	// W7
	last = sos
	for k := range n {
		switch p.at(k) {
		case bidi.L, bidi.R:
			last = p.at(k)
		case bidi.EN:
			if last == bidi.L {
				p.set(k, bidi.L)
			}
		}
	}
}

// strong maps a resolved type to the direction it lends neutrals: numbers
// count as right-to-left. Neutrals return ON.
func strong(c bidi.Class) bidi.Class {
	switch c {
	case bidi.L:
		return bidi.L
	case bidi.R, bidi.EN, bidi.AN:
		return bidi.R
	default:
		return bidi.ON
	}
}

// bracketPairs locates paired brackets (BD16) and returns them as positions
// in p.idx, sorted by opening bracket.
func (p *paragraph) bracketPairs() [][2]int {
	type opener struct {
		closing rune
		pos     int
	}
	var stack []opener
	var pairs [][2]int
	for k := range p.idx {
		if p.at(k) != bidi.ON {
			continue
		}
		r := p.runes[p.idx[k]]
		if closing, ok := brackets[r]; ok {
			if len(stack) == maxBracketDepth {
				break
			}
			stack = append(stack, opener{closing: closing, pos: k})
			continue
		}
		for j := len(stack) - 1; j >= 0; j-- {
			if stack[j].closing == r {
				pairs = append(pairs, [2]int{stack[j].pos, k})
				stack = stack[:j]
				break
			}
		}
	}
	sort.Slice(pairs, func(a, b int) bool { return pairs[a][0] < pairs[b][0] })
	return pairs
}

// resolveBrackets applies rule N0.
func (p *paragraph) resolveBrackets() {
	e := p.direction()
	for _, pair := range p.bracketPairs() {
		open, closing := pair[0], pair[1]

		var sameInside, oppositeInside bool
		for k := open + 1; k < closing; k++ {
			switch d := strong(p.at(k)); {
			case d == e:
				sameInside = true
			case d != bidi.ON:
				oppositeInside = true
			}
		}

		var dir bidi.Class
		switch {
		case sameInside:
			dir = e
		case oppositeInside:
			context := e
			for k := open - 1; k >= 0; k-- {
				if d := strong(p.at(k)); d != bidi.ON {
					context = d
					break
				}
			}
			dir = context
		default:
			continue
		}

		for _, k := range []int{open, closing} {
			p.set(k, dir)
			for j := k + 1; j < len(p.idx) && p.orig[p.idx[j]] == bidi.NSM; j++ {
				p.set(j, dir)
			}
		}
	}
}

// resolveNeutrals applies rules N1 and N2.
func (p *paragraph) resolveNeutrals() {
	n := len(p.idx)
	e := p.direction()
	for k := 0; k < n; {
		if strong(p.at(k)) != bidi.ON {
			k++
			continue
		}
		end := k
		for end < n && strong(p.at(end)) == bidi.ON {
			end++
		}
		before, after := e, e
		if k > 0 {
			before = strong(p.at(k - 1))
		}
		if end < n {
			after = strong(p.at(end))
		}
		dir := e
		if before == after {
			dir = before
		}
		for j := k; j < end; j++ {
			p.set(j, dir)
		}
		k = end
	}
}

// resolveImplicit applies rules I1 and I2. Boundary neutrals take the level
// of the character before them.
func (p *paragraph) resolveImplicit() {
	p.levels = make([]int, len(p.runes))
	level := p.base
	for i, c := range p.types {
		if p.orig[i] == bidi.BN {
			p.levels[i] = level
			continue
		}
		level = p.base
		switch {
		case p.base%2 == 0 && c == bidi.R:
			level++
		case p.base%2 == 0 && (c == bidi.AN || c == bidi.EN):
			level += 2
		case p.base%2 == 1 && (c == bidi.L || c == bidi.AN || c == bidi.EN):
			level++
		}
		p.levels[i] = level
	}
}

// resetTrailingWhitespace applies rule L1: separators, and whitespace before
// them or at the end of the line, return to the paragraph level.
func (p *paragraph) resetTrailingWhitespace() {
	trailing := true
	for i := len(p.runes) - 1; i >= 0; i-- {
		switch p.orig[i] {
		case bidi.S, bidi.B:
			p.levels[i] = p.base
			trailing = true
		case bidi.WS, bidi.BN:
			if trailing {
				p.levels[i] = p.base
			}
		default:
			trailing = false
		}
	}
}

// visual applies rule L2, reversing every run at or above each level from
// the highest down to the lowest odd one, then mirrors glyphs left at
// right-to-left levels.
func (p *paragraph) visual() []rune {
	runes := slices.Clone(p.runes)
	levels := slices.Clone(p.levels)

	highest, lowestOdd := 0, -1
	for _, l := range levels {
		highest = max(highest, l)
		if l%2 == 1 && (lowestOdd < 0 || l < lowestOdd) {
			lowestOdd = l
		}
	}
	if lowestOdd < 0 {
		return runes
	}

	for level := highest; level >= lowestOdd; level-- {
		for i := 0; i < len(runes); {
			if levels[i] < level {
				i++
				continue
			}
			end := i
			for end < len(runes) && levels[end] >= level {
				end++
			}
			slices.Reverse(runes[i:end])
			slices.Reverse(levels[i:end])
			i = end
		}
	}

	for i, r := range runes {
		if levels[i]%2 == 1 {
			if m, ok := mirrors[r]; ok {
				runes[i] = m
			}
		}
	}
	return runes
}
