package export

import (
	"log"
	"strings"

	"github.com/jonathan/resume-builder/internal/preview"
)

// PageSpec is the page geometry in millimetres.
type PageSpec struct {
	Width  float64
	Height float64
	Margin float64
}

// Letter is a US Letter portrait page with 20 mm margins.
var Letter = PageSpec{Width: 215.9, Height: 279.4, Margin: 20}

// ContentWidth is the usable line width between the margins.
func (p PageSpec) ContentWidth() float64 {
	return p.Width - 2*p.Margin
}

// Bottom is the break threshold: content may not extend below it.
func (p PageSpec) Bottom() float64 {
	return p.Height - p.Margin
}

const ptToMM = 25.4 / 72

// Style selects a font size and face for one run of text.
type Style struct {
	Size   float64
	Bold   bool
	Italic bool
}

// LineHeight is the vertical advance of one line in this style.
func (s Style) LineHeight() float64 {
	return s.Size * ptToMM * 1.35
}

// ascent places the baseline of a line below its top edge.
func (s Style) ascent() float64 {
	return s.Size * ptToMM
}

var (
	styleName     = Style{Size: 18, Bold: true}
	styleContact  = Style{Size: 10}
	styleSection  = Style{Size: 12, Bold: true}
	styleTitle    = Style{Size: 10.5, Bold: true}
	styleSubtitle = Style{Size: 10.5, Italic: true}
	styleBody     = Style{Size: 10}
)

const (
	bulletIndent = 6.0
	entryGap     = 3.0
	sectionGap   = 2.0
	leftColumn   = 0.68
)

// Measurer is the text-measurement facility of a PDF renderer.
type Measurer interface {
	// TextWidth returns the rendered width of text in mm.
	TextWidth(text string, style Style) float64
	// SplitText wraps text into lines no wider than width.
	SplitText(text string, width float64, style Style) []string
}

// OpKind distinguishes drawing operations
type OpKind int

// Drawing operations.
const (
	OpText OpKind = iota
	OpRule
)

// Op is one positioned drawing operation. For OpText, Y is the baseline.
// For OpRule, a horizontal line runs from X to X2 at Y.
type Op struct {
	Kind  OpKind
	X     float64
	Y     float64
	X2    float64
	Text  string
	Style Style
}

// Page is the ordered drawing operations of one page.
type Page struct {
	Ops []Op
}

// Layout is a fully positioned document, ready to draw.
type Layout struct {
	Spec  PageSpec
	Pages []Page
}

// block is a layout unit. Its ops are positioned relative to the top of the
// block, in reading order. Only a block taller than a page is split.
type block struct {
	ops    []Op
	height float64
	gap    float64
}

func (b *block) text(x, top float64, text string, s Style) {
	b.ops = append(b.ops, Op{Kind: OpText, X: x, Y: top + s.ascent(), Text: text, Style: s})
}

func (b *block) rule(x1, x2, y float64) {
	b.ops = append(b.ops, Op{Kind: OpRule, X: x1, X2: x2, Y: y})
}

// then appends next below b, so the two are placed as one unit.
func (b block) then(next block) block {
	offset := b.height + b.gap
	for _, op := range next.ops {
		op.Y += offset
		b.ops = append(b.ops, op)
	}
	b.height = offset + next.height
	b.gap = next.gap
	return b
}

// Plan lays doc out top to bottom on pages of the given spec. Before each
// entry is placed, the cursor is checked against the bottom threshold and a
// new page is started if the whole entry would not fit. A section title is
// always placed together with its first entry.
func Plan(doc preview.Document, spec PageSpec, m Measurer) Layout {
	p := &planner{spec: spec, m: m, y: spec.Margin, pages: []Page{{}}}

	p.place(p.header(doc))
	if doc.Summary != "" {
		p.place(p.paragraph(doc.Summary, spec.Margin, spec.ContentWidth(), styleBody, entryGap))
	}

	for _, section := range doc.Sections {
		entries := p.sectionEntries(section)
		if len(entries) == 0 {
			continue
		}
		entries[0] = p.sectionTitle(section.Title).then(entries[0])
		for _, b := range entries {
			p.place(b)
		}
		p.y += sectionGap
	}

	return Layout{Spec: spec, Pages: p.pages}
}

type planner struct {
	spec  PageSpec
	m     Measurer
	y     float64
	pages []Page
}

// place emits b at the cursor, breaking the page first if b would cross the
// bottom threshold. A block taller than a page cannot avoid a split, so it
// starts at the cursor and flows line by line onto the following pages.
func (p *planner) place(b block) {
	if p.y+b.height > p.spec.Bottom() {
		if b.height > p.spec.Bottom()-p.spec.Margin {
			log.Printf("[export] entry of %.1fmm is taller than a page, splitting it", b.height)
			p.flow(b)
			return
		}
		if p.y > p.spec.Margin {
			p.newPage()
		}
	}
	page := &p.pages[len(p.pages)-1]
	for _, op := range b.ops {
		op.Y += p.y
		page.Ops = append(page.Ops, op)
	}
	p.y += b.height + b.gap
}

// flow places b starting at the cursor and moves to a new page whenever the
// next line would cross the bottom threshold. Ops sharing a row stay together.
func (p *planner) flow(b block) {
	offset := p.y
	for _, op := range b.ops {
		top, bottom := opExtent(op)
		if offset+bottom > p.spec.Bottom() && offset+top > p.spec.Margin+0.01 {
			p.newPage()
			offset = p.spec.Margin - top
		}
		op.Y += offset
		page := &p.pages[len(p.pages)-1]
		page.Ops = append(page.Ops, op)
	}
	p.y = offset + b.height + b.gap
}

// opExtent is the vertical span of op relative to its block.
func opExtent(op Op) (top, bottom float64) {
	if op.Kind == OpRule {
		return op.Y, op.Y
	}
	top = op.Y - op.Style.ascent()
	return top, top + op.Style.LineHeight()
}

func (p *planner) newPage() {
	p.pages = append(p.pages, Page{})
	p.y = p.spec.Margin
}

func (p *planner) centered(b *block, top float64, text string, s Style) {
	x := (p.spec.Width - p.m.TextWidth(text, s)) / 2
	b.text(x, top, text, s)
}

func (p *planner) header(doc preview.Document) block {
	var b block
	p.centered(&b, 0, doc.Name, styleName)
	y := styleName.LineHeight()

	for _, line := range []string{doc.ContactLine(fieldSep), strings.Join(doc.Links, fieldSep)} {
		if line == "" {
			continue
		}
		for _, wrapped := range p.m.SplitText(line, p.spec.ContentWidth(), styleContact) {
			p.centered(&b, y, wrapped, styleContact)
			y += styleContact.LineHeight()
		}
	}

	y += 1.5
	b.rule(p.spec.Margin, p.spec.Width-p.spec.Margin, y)
	b.height = y
	b.gap = 5
	return b
}

func (p *planner) paragraph(text string, x, width float64, s Style, gap float64) block {
	var b block
	for _, para := range strings.Split(text, "\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		for _, line := range p.m.SplitText(para, width, s) {
			b.text(x, b.height, line, s)
			b.height += s.LineHeight()
		}
	}
	b.gap = gap
	return b
}

func (p *planner) sectionTitle(title string) block {
	var b block
	b.text(p.spec.Margin, 0, title, styleSection)
	y := styleSection.LineHeight() + 0.5
	b.rule(p.spec.Margin, p.spec.Width-p.spec.Margin, y)
	b.height = y
	b.gap = 2.5
	return b
}

func (p *planner) sectionEntries(section preview.Section) []block {
	var blocks []block
	for _, e := range section.Entries {
		blocks = append(blocks, p.entry(e))
	}

	width := p.spec.ContentWidth()
	for _, s := range section.Skills {
		blocks = append(blocks, p.paragraph(s.Label+": "+s.Value, p.spec.Margin, width, styleBody, 1.5))
	}
	if len(section.Tags) > 0 {
		blocks = append(blocks, p.paragraph(strings.Join(section.Tags, ", "), p.spec.Margin, width, styleBody, 1.5))
	}
	return blocks
}

type styledLine struct {
	text  string
	style Style
}

// entry lays out one list entry: a two-column heading (title and subtitle
// left, dates, location and GPA right) followed by bullets or description.
func (p *planner) entry(e preview.Entry) block {
	var b block
	leftWidth := p.spec.ContentWidth() * leftColumn
	right := p.spec.Width - p.spec.Margin

	var left []styledLine
	for _, line := range p.m.SplitText(e.Title, leftWidth, styleTitle) {
		left = append(left, styledLine{line, styleTitle})
	}
	for _, line := range p.m.SplitText(e.Subtitle, leftWidth, styleSubtitle) {
		left = append(left, styledLine{line, styleSubtitle})
	}

	var meta []string
	for _, v := range []string{e.Dates, e.Location} {
		if v != "" {
			meta = append(meta, v)
		}
	}
	if e.GPA != "" {
		meta = append(meta, "GPA: "+e.GPA)
	}

	rowHeight := styleTitle.LineHeight()
	rows := max(len(left), len(meta))
	for i := 0; i < rows; i++ {
		top := float64(i) * rowHeight
		if i < len(left) {
			b.text(p.spec.Margin, top, left[i].text, left[i].style)
		}
		if i < len(meta) {
			b.text(right-p.m.TextWidth(meta[i], styleBody), top, meta[i], styleBody)
		}
	}
	b.height = float64(rows) * rowHeight

	if len(e.Bullets) > 0 {
		b.height += 0.5
		textWidth := p.spec.ContentWidth() - bulletIndent
		for _, bullet := range e.Bullets {
			for i, line := range p.m.SplitText(strings.TrimSpace(bullet), textWidth, styleBody) {
				if i == 0 {
					b.text(p.spec.Margin+2, b.height, "•", styleBody)
				}
				b.text(p.spec.Margin+bulletIndent, b.height, line, styleBody)
				b.height += styleBody.LineHeight()
			}
		}
	}

	if e.Description != "" {
		b.height += 0.5
		b = b.then(p.paragraph(e.Description, p.spec.Margin, p.spec.ContentWidth(), styleBody, 0))
	}

	b.gap = entryGap
	return b
}
