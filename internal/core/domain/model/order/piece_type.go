package order

import (
	"fmt"

	"laundryops/internal/pkg/errs"
)

// PieceType classifies what kind of piece an order item holds. PieceOther
// requires a free-text label on the item.
type PieceType int

const (
	PieceTypeUnknown PieceType = iota
	PieceClothing
	PieceCostume
	PieceSneaker
	PieceRug
	PieceCurtain
	PieceIndustrial
	PieceOther
)

func getPieceTypeStrings() map[PieceType]string {
	return map[PieceType]string{
		PieceTypeUnknown: "unknown",
		PieceClothing:    "clothing",
		PieceCostume:     "costume",
		PieceSneaker:     "sneaker",
		PieceRug:         "rug",
		PieceCurtain:     "curtain",
		PieceIndustrial:  "industrial",
		PieceOther:       "other",
	}
}

// String returns the lower-case piece type name.
func (p PieceType) String() string {
	if str, ok := getPieceTypeStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// PieceTypeFromString parses a piece type name as supplied by callers.
func PieceTypeFromString(name string) (PieceType, error) {
	for pieceType, str := range getPieceTypeStrings() {
		if pieceType != PieceTypeUnknown && str == name {
			return pieceType, nil
		}
	}
	return PieceTypeUnknown, errs.NewValueIsInvalidErrorWithCause("pieceType",
		fmt.Errorf("%q is not a valid piece type", name))
}

// Validate rejects PieceTypeUnknown and out-of-range values.
func (p PieceType) Validate() error {
	if p < PieceClothing || p > PieceOther {
		return errs.NewValueIsInvalidErrorWithCause("pieceType",
			fmt.Errorf("%d is not a valid piece type", p))
	}
	return nil
}

// MarshalText encodes the piece type as its name, so it can serve as a JSON
// map key in ironing tallies.
func (p PieceType) MarshalText() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return []byte(p.String()), nil
}

// UnmarshalText decodes a piece type from its name.
func (p *PieceType) UnmarshalText(text []byte) error {
	parsed, err := PieceTypeFromString(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
