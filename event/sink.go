package event

// Sink is the pure callback contract a tree-construction consumer
// implements. The scanner calls these methods synchronously, from its
// own call stack, in document order (spec.md §5, §6). A Sink must not
// retain slices or strings it did not copy: the scanner reuses its
// internal buffers across calls for allocation efficiency (spec.md
// §9 "Deeply mutable shared buffers").
type Sink interface {
	StartDocument(encoding string, augs *Augmentations)
	XMLDecl(version, encoding, standalone string, augs *Augmentations)
	DoctypeDecl(d Doctype, augs *Augmentations)
	Comment(text string, augs *Augmentations)
	ProcessingInstruction(target, data string, augs *Augmentations)
	StartElement(name QualifiedName, attrs Attributes, augs *Augmentations)
	EmptyElement(name QualifiedName, attrs Attributes, augs *Augmentations)
	Characters(text string, augs *Augmentations)
	StartCDATA(augs *Augmentations)
	EndCDATA(augs *Augmentations)
	EndElement(name QualifiedName, augs *Augmentations)
	EndDocument(augs *Augmentations)

	// StartGeneralEntity/EndGeneralEntity bracket a named reference
	// when the NotifyHTMLBuiltinRefs option is on, and a frame pushed
	// through EvaluateInputSource with notify set. Numeric references
	// are never bracketed, and the NotifyCharRefs and
	// NotifyXMLBuiltinRefs options produce no calls.
	StartGeneralEntity(name string, augs *Augmentations)
	EndGeneralEntity(name string, augs *Augmentations)
}

// BaseSink is an embeddable no-op Sink. Concrete filters compose it
// the way the teacher's ClientTrace hook sets compose NoOpLoggingHooks
// — only the methods of interest are overridden by struct embedding
// plus method shadowing on a wrapping type (spec.md §9 "Inheritance of
// filter components").
type BaseSink struct{}

func (BaseSink) StartDocument(string, *Augmentations)                      {}
func (BaseSink) XMLDecl(string, string, string, *Augmentations)            {}
func (BaseSink) DoctypeDecl(Doctype, *Augmentations)                       {}
func (BaseSink) Comment(string, *Augmentations)                            {}
func (BaseSink) ProcessingInstruction(string, string, *Augmentations)      {}
func (BaseSink) StartElement(QualifiedName, Attributes, *Augmentations)    {}
func (BaseSink) EmptyElement(QualifiedName, Attributes, *Augmentations)    {}
func (BaseSink) Characters(string, *Augmentations)                        {}
func (BaseSink) StartCDATA(*Augmentations)                                 {}
func (BaseSink) EndCDATA(*Augmentations)                                   {}
func (BaseSink) EndElement(QualifiedName, *Augmentations)                  {}
func (BaseSink) EndDocument(*Augmentations)                                {}
func (BaseSink) StartGeneralEntity(string, *Augmentations)                 {}
func (BaseSink) EndGeneralEntity(string, *Augmentations)                   {}

var _ Sink = BaseSink{}

// ForwardingSink forwards every call to Next, the way the teacher
// models a pass-through pipeline stage. Embed it and override
// individual methods to build a filter.
type ForwardingSink struct {
	Next Sink
}

func (f ForwardingSink) StartDocument(encoding string, augs *Augmentations) {
	f.Next.StartDocument(encoding, augs)
}
func (f ForwardingSink) XMLDecl(version, encoding, standalone string, augs *Augmentations) {
	f.Next.XMLDecl(version, encoding, standalone, augs)
}
func (f ForwardingSink) DoctypeDecl(d Doctype, augs *Augmentations) { f.Next.DoctypeDecl(d, augs) }
func (f ForwardingSink) Comment(text string, augs *Augmentations)  { f.Next.Comment(text, augs) }
func (f ForwardingSink) ProcessingInstruction(target, data string, augs *Augmentations) {
	f.Next.ProcessingInstruction(target, data, augs)
}
func (f ForwardingSink) StartElement(name QualifiedName, attrs Attributes, augs *Augmentations) {
	f.Next.StartElement(name, attrs, augs)
}
func (f ForwardingSink) EmptyElement(name QualifiedName, attrs Attributes, augs *Augmentations) {
	f.Next.EmptyElement(name, attrs, augs)
}
func (f ForwardingSink) Characters(text string, augs *Augmentations) { f.Next.Characters(text, augs) }
func (f ForwardingSink) StartCDATA(augs *Augmentations)              { f.Next.StartCDATA(augs) }
func (f ForwardingSink) EndCDATA(augs *Augmentations)                { f.Next.EndCDATA(augs) }
func (f ForwardingSink) EndElement(name QualifiedName, augs *Augmentations) {
	f.Next.EndElement(name, augs)
}
func (f ForwardingSink) EndDocument(augs *Augmentations) { f.Next.EndDocument(augs) }
func (f ForwardingSink) StartGeneralEntity(name string, augs *Augmentations) {
	f.Next.StartGeneralEntity(name, augs)
}
func (f ForwardingSink) EndGeneralEntity(name string, augs *Augmentations) {
	f.Next.EndGeneralEntity(name, augs)
}

var _ Sink = ForwardingSink{}
