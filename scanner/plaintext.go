package scanner

// scanPlaintextStep advances ModePlaintext scanning by one step: every
// remaining character in the document, including what would otherwise
// be markup, is plain text (spec.md §4.5, the deprecated <plaintext>
// element — there is no end tag and no way back to ModeNormal).
func (s *Scanner) scanPlaintextStep() error {
	s.beginText()
	ch, ok := s.next()
	if !ok {
		return nil
	}
	s.textBuf.WriteRune(ch)
	return nil
}
