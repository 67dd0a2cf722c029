package scanner

import "github.com/nekohtml/gohtml/event"

// suppressGate sits between the Scanner and the caller's event.Sink,
// implementing spec.md §4.4's requirement that a <meta charset>-driven
// encoding switch not re-emit the StartElement/Comment/Characters/...
// events already produced for the buffered prefix the new decoder is
// about to re-read from byte zero.
//
// The depth marker spec.md §4.4 describes ("suppress duplicates until
// depth returns to where it was at switch time") is ambiguous on its
// own: the open-element stack can return to the same depth more than
// once before truly reaching the point where the switch happened (two
// sibling elements at the same nesting level, say). suppressGate
// instead marks the exact position in the emitted-event sequence,
// which is strictly more precise than depth alone while agreeing with
// it whenever depth is unambiguous: arm() is called with the count of
// events already forwarded to Next, and that many subsequent calls
// are swallowed instead of forwarded, so the replayed prefix produces
// no visible duplicates and the first genuinely new event after it
// passes straight through.
//
// StartDocument/XMLDecl/EndDocument are not gated: Scanner only ever
// calls them once each, outside of any replay, so they are forwarded
// unconditionally via the embedded ForwardingSink.
type suppressGate struct {
	event.ForwardingSink

	emitted  int
	suppress int
}

// arm marks the current emitted count as the replay boundary: the
// next `emitted` gated calls are swallowed rather than forwarded.
func (g *suppressGate) arm() { g.suppress = g.emitted }

func (g *suppressGate) gate(forward func()) {
	g.emitted++
	if g.suppress > 0 {
		g.suppress--
		return
	}
	forward()
}

func (g *suppressGate) DoctypeDecl(d event.Doctype, augs *event.Augmentations) {
	g.gate(func() { g.Next.DoctypeDecl(d, augs) })
}

func (g *suppressGate) Comment(text string, augs *event.Augmentations) {
	g.gate(func() { g.Next.Comment(text, augs) })
}

func (g *suppressGate) ProcessingInstruction(target, data string, augs *event.Augmentations) {
	g.gate(func() { g.Next.ProcessingInstruction(target, data, augs) })
}

func (g *suppressGate) StartElement(name event.QualifiedName, attrs event.Attributes, augs *event.Augmentations) {
	g.gate(func() { g.Next.StartElement(name, attrs, augs) })
}

func (g *suppressGate) EmptyElement(name event.QualifiedName, attrs event.Attributes, augs *event.Augmentations) {
	g.gate(func() { g.Next.EmptyElement(name, attrs, augs) })
}

func (g *suppressGate) Characters(text string, augs *event.Augmentations) {
	g.gate(func() { g.Next.Characters(text, augs) })
}

func (g *suppressGate) StartCDATA(augs *event.Augmentations) {
	g.gate(func() { g.Next.StartCDATA(augs) })
}

func (g *suppressGate) EndCDATA(augs *event.Augmentations) {
	g.gate(func() { g.Next.EndCDATA(augs) })
}

func (g *suppressGate) EndElement(name event.QualifiedName, augs *event.Augmentations) {
	g.gate(func() { g.Next.EndElement(name, augs) })
}

func (g *suppressGate) StartGeneralEntity(name string, augs *event.Augmentations) {
	g.gate(func() { g.Next.StartGeneralEntity(name, augs) })
}

func (g *suppressGate) EndGeneralEntity(name string, augs *event.Augmentations) {
	g.gate(func() { g.Next.EndGeneralEntity(name, augs) })
}

var _ event.Sink = (*suppressGate)(nil)
