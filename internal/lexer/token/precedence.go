package token

// UnaryPrecedence is zero for kinds that are not prefix operators. Prefix
// operators bind tighter than every binary operator.
func (kind Kind) UnaryPrecedence() int {
	switch kind {
	case PLUS, MINUS, BANG, TILDE:
		return 6
	default:
		return 0
	}
}

// BinaryPrecedence is zero for kinds that are not infix operators. Operators
// sharing a precedence associate to the left.
func (kind Kind) BinaryPrecedence() int {
	switch kind {
	case STAR, SLASH, PERCENT, HAT:
		return 5
	case PLUS, MINUS:
		return 4
	case EQUAL_EQUAL, BANG_EQUAL, LESS, LESS_EQ, GREATER, GREATER_EQ:
		return 3
	case AMPERSAND_AMPERSAND, AMPERSAND:
		return 2
	case PIPE_PIPE, PIPE:
		return 1
	default:
		return 0
	}
}

func UnaryOperators() []Kind {
	var kinds []Kind
	for _, kind := range Kinds() {
		if kind.UnaryPrecedence() > 0 {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

func BinaryOperators() []Kind {
	var kinds []Kind
	for _, kind := range Kinds() {
		if kind.BinaryPrecedence() > 0 {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

func Keywords() []Kind {
	var kinds []Kind
	for _, kind := range Kinds() {
		if kind.IsKeyword() {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}
