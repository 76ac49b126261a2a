package texthuffman

// ParseHeader parses the length header and code table section at the front
// of an encoded stream.  It returns the recovered CodeTable, in the order
// the entries were written, and the payload that follows the header.
//
// The payload itself is not decoded.
//
// Not all inputs are valid.  In particular, ParseHeader rejects streams
// shorter than the length header, fields containing anything other than
// decimal digits, a declared section length running past the end of the
// stream, entries truncated by the section boundary, symbol values above
// MaxSymbol, codes containing characters other than '0' and '1', and
// symbols listed more than once.  Every such error wraps ErrMalformedHeader.
func ParseHeader(stream string) (*CodeTable, string, error) {
	if len(stream) < lengthHeaderWidth {
		return nil, "", malformedf("stream has %d characters, need at least %d", len(stream), lengthHeaderWidth)
	}

	sectionLen, ok := parseDigits(stream[:lengthHeaderWidth])
	if !ok {
		return nil, "", malformedf("invalid length header %q", stream[:lengthHeaderWidth])
	}

	rest := stream[lengthHeaderWidth:]
	if sectionLen > uint64(len(rest)) {
		return nil, "", malformedf("code table section of %d characters runs past end of stream (%d remaining)", sectionLen, len(rest))
	}
	section, payload := rest[:sectionLen], rest[sectionLen:]

	table := NewCodeTable()
	for pos := 0; pos < len(section); {
		if len(section)-pos < 2*entryFieldWidth {
			return nil, "", malformedf("truncated entry at offset %d", pos)
		}

		start := pos
		size, ok := parseDigits(section[pos : pos+entryFieldWidth])
		if !ok {
			return nil, "", malformedf("invalid code length %q at offset %d", section[pos:pos+entryFieldWidth], pos)
		}
		pos += entryFieldWidth

		value, ok := parseDigits(section[pos : pos+entryFieldWidth])
		if !ok {
			return nil, "", malformedf("invalid symbol %q at offset %d", section[pos:pos+entryFieldWidth], pos)
		}
		if value > uint64(MaxSymbol) {
			return nil, "", malformedf("symbol %d at offset %d exceeds %d", value, pos, MaxSymbol)
		}
		pos += entryFieldWidth

		if size > uint64(len(section)-pos) {
			return nil, "", malformedf("code of %d characters for symbol %d runs past end of section", size, value)
		}
		hc := Code(section[pos : pos+int(size)])
		if !isBitString(string(hc)) {
			return nil, "", malformedf("code %s for symbol %d is not a bit string", hc, value)
		}
		pos += int(size)

		if _, found := table.Lookup(byte(value)); found {
			return nil, "", malformedf("duplicate symbol %d at offset %d", value, start)
		}
		table.Set(byte(value), hc)
	}

	return table, payload, nil
}
