package stellarclass

// parseState enumerates the forgiving text parser's states. The
// parser never backtracks: each state consumes zero or one input
// byte and either advances to another state or halts in end
// (stateLumClassBegin stays put only after consuming a space).
type parseState int

const (
	stateBegin parseState = iota
	stateSubdwarfPrefix
	stateNormalStarClass
	stateWolfRayetType
	stateNormalStarSubclass
	stateNormalStarSubclassDecimal
	stateNormalStarSubclassFinal
	stateLumClassBegin
	stateLumClassI
	stateLumClassII
	stateLumClassIdash
	stateLumClassIa
	stateLumClassV
	stateWDType
	stateWDExtendedType
	stateWDSubclass
	stateNeutronStarType
	stateNeutronStarExtendedType
	stateNeutronStarSubclass
	stateEnd
)

// Parse interprets s as a Hipparcos-style spectral type string. It
// never fails: any input that doesn't match a recognized pattern
// simply yields however much of the 4-tuple the parser managed to
// determine before giving up, with the rest left at their Unknown
// sentinels. Excess trailing characters are silently ignored.
func Parse(s string) StellarClass {
	p := &parser{input: s}
	p.run()
	return p.result()
}

type parser struct {
	input string
	pos   int

	starType   StarType
	spectral   uint8
	subclass   Subclass
	luminosity LuminosityClass
}

func (p *parser) result() StellarClass {
	return StellarClass{
		starType:   p.starType,
		spectral:   p.spectral,
		subclass:   p.subclass,
		luminosity: p.luminosity,
	}
}

// char returns the byte at the current position, or 0 past the end
// of input (the parser's synthetic end-of-string marker).
func (p *parser) char() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) advance() { p.pos++ }

func (p *parser) run() {
	p.starType = NormalStar
	p.spectral = uint8(SpectralUnknown)
	p.subclass = SubclassUnknown
	p.luminosity = LumUnknown

	state := stateBegin
	for state != stateEnd {
		switch state {
		case stateBegin:
			switch p.char() {
			case 'Q':
				p.starType = NeutronStar
				p.spectral = uint8(SpectralQ)
				p.advance()
				state = stateNeutronStarType
			case 'X':
				p.starType = BlackHole
				state = stateEnd
			case 'D':
				p.starType = WhiteDwarf
				p.spectral = uint8(SpectralD)
				p.advance()
				state = stateWDType
			case 's':
				p.advance()
				state = stateSubdwarfPrefix
			case '?':
				state = stateEnd
			default:
				state = stateNormalStarClass
			}

		case stateSubdwarfPrefix:
			if p.char() == 'd' {
				p.advance()
				p.luminosity = LumVI
				state = stateNormalStarClass
			} else {
				state = stateEnd
			}

		case stateNormalStarClass:
			switch p.char() {
			case 'O':
				p.spectral = uint8(SpectralO)
				p.advance()
				state = stateNormalStarSubclass
			case 'B':
				p.spectral = uint8(SpectralB)
				p.advance()
				state = stateNormalStarSubclass
			case 'A':
				p.spectral = uint8(SpectralA)
				p.advance()
				state = stateNormalStarSubclass
			case 'F':
				p.spectral = uint8(SpectralF)
				p.advance()
				state = stateNormalStarSubclass
			case 'G':
				p.spectral = uint8(SpectralG)
				p.advance()
				state = stateNormalStarSubclass
			case 'K':
				p.spectral = uint8(SpectralK)
				p.advance()
				state = stateNormalStarSubclass
			case 'M':
				p.spectral = uint8(SpectralM)
				p.advance()
				state = stateNormalStarSubclass
			case 'R':
				p.spectral = uint8(SpectralR)
				p.advance()
				state = stateNormalStarSubclass
			case 'S':
				p.spectral = uint8(SpectralS)
				p.advance()
				state = stateNormalStarSubclass
			case 'N':
				p.spectral = uint8(SpectralN)
				p.advance()
				state = stateNormalStarSubclass
			case 'L':
				p.spectral = uint8(SpectralL)
				p.advance()
				state = stateNormalStarSubclass
			case 'T':
				p.spectral = uint8(SpectralT)
				p.advance()
				state = stateNormalStarSubclass
			case 'Y':
				p.spectral = uint8(SpectralY)
				p.advance()
				state = stateNormalStarSubclass
			case 'C':
				p.spectral = uint8(SpectralC)
				p.advance()
				state = stateNormalStarSubclass
			case 'W':
				p.advance()
				state = stateWolfRayetType
			default:
				p.advance()
				state = stateEnd
			}

		case stateWolfRayetType:
			switch p.char() {
			case 'C':
				p.spectral = uint8(SpectralWC)
				p.advance()
			case 'N':
				p.spectral = uint8(SpectralWN)
				p.advance()
			case 'O':
				p.spectral = uint8(SpectralWO)
				p.advance()
			default:
				p.spectral = uint8(SpectralWC)
			}
			state = stateNormalStarSubclass

		case stateNormalStarSubclass:
			if isDigit(p.char()) {
				p.subclass = digitValue(p.char())
				p.advance()
				state = stateNormalStarSubclassDecimal
			} else {
				state = stateLumClassBegin
			}

		case stateNormalStarSubclassDecimal:
			if p.char() == '.' {
				p.advance()
				state = stateNormalStarSubclassFinal
			} else {
				state = stateLumClassBegin
			}

		case stateNormalStarSubclassFinal:
			if isDigit(p.char()) {
				p.advance()
				state = stateLumClassBegin
			} else {
				p.advance()
				state = stateEnd
			}

		case stateLumClassBegin:
			switch p.char() {
			case ' ':
				// String separates the luminosity suffix with a space.
				p.advance()
			case 'I':
				p.advance()
				state = stateLumClassI
			case 'V':
				p.advance()
				state = stateLumClassV
			default:
				p.advance()
				state = stateEnd
			}

		case stateLumClassI:
			switch p.char() {
			case 'I':
				p.advance()
				state = stateLumClassII
			case 'V':
				p.luminosity = LumIV
				p.advance()
				state = stateEnd
			case 'a':
				p.advance()
				state = stateLumClassIa
			case 'b':
				p.luminosity = LumIb
				p.advance()
				state = stateEnd
			case '-':
				p.advance()
				state = stateLumClassIdash
			default:
				p.luminosity = LumIb
				p.advance()
				state = stateEnd
			}

		case stateLumClassII:
			if p.char() == 'I' {
				p.luminosity = LumIII
				p.advance()
			} else {
				p.luminosity = LumII
			}
			state = stateEnd

		case stateLumClassIdash:
			if p.char() == 'a' {
				p.advance()
				state = stateLumClassIa
			} else {
				p.luminosity = LumIb
				p.advance()
				state = stateEnd
			}

		case stateLumClassIa:
			if p.char() == '0' {
				p.luminosity = LumIa0
			} else {
				p.luminosity = LumIa
			}
			p.advance()
			state = stateEnd

		case stateLumClassV:
			if p.char() == 'I' {
				p.luminosity = LumVI
				p.advance()
			} else {
				p.luminosity = LumV
			}
			state = stateEnd

		case stateWDType:
			switch p.char() {
			case 'A':
				p.spectral = uint8(SpectralDA)
				p.advance()
			case 'B':
				p.spectral = uint8(SpectralDB)
				p.advance()
			case 'C':
				p.spectral = uint8(SpectralDC)
				p.advance()
			case 'O':
				p.spectral = uint8(SpectralDO)
				p.advance()
			case 'Q':
				p.spectral = uint8(SpectralDQ)
				p.advance()
			case 'X':
				p.spectral = uint8(SpectralDX)
				p.advance()
			case 'Z':
				p.spectral = uint8(SpectralDZ)
				p.advance()
			}
			state = stateWDExtendedType

		case stateWDExtendedType:
			if isWDSuffix(p.char()) {
				p.advance()
			}
			state = stateWDSubclass

		case stateWDSubclass:
			if isDigit(p.char()) {
				p.subclass = digitValue(p.char())
				p.advance()
			}
			state = stateEnd

		case stateNeutronStarType:
			switch p.char() {
			case 'N':
				p.spectral = uint8(SpectralQN)
				p.advance()
			case 'P':
				p.spectral = uint8(SpectralQP)
				p.advance()
			case 'M':
				p.spectral = uint8(SpectralQM)
				p.advance()
			}
			state = stateNeutronStarExtendedType

		case stateNeutronStarExtendedType:
			switch p.char() {
			case 'P', 'M', 'N':
				p.advance()
			}
			state = stateNeutronStarSubclass

		case stateNeutronStarSubclass:
			if isDigit(p.char()) {
				p.subclass = digitValue(p.char())
				p.advance()
			}
			state = stateEnd
		}
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func digitValue(b byte) Subclass { return Subclass(b - '0') }

func isWDSuffix(b byte) bool {
	switch b {
	case 'A', 'B', 'C', 'O', 'Q', 'Z', 'X', 'V', 'P', 'H', 'E':
		return true
	}
	return false
}
